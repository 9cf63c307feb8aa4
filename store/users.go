package store

import (
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
)

// CreateUser inserts if the username is free, all inside the critical
// section, so two racing registrations cannot both succeed.
func (s *Store) CreateUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}

	u.ID = s.nextUserID
	s.nextUserID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// UpdateUser shallow-merges the patch onto the stored record. A username
// change keeps the uniqueness invariant.
func (s *Store) UpdateUser(id int, patch models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}

	if patch.Username != nil && *patch.Username != u.Username {
		for _, existing := range s.users {
			if existing.Username == *patch.Username {
				return models.User{}, ErrDuplicateUsername
			}
		}
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Height != nil {
		u.Height = *patch.Height
	}
	if patch.Weight != nil {
		u.Weight = *patch.Weight
	}
	if patch.GoalWeight != nil {
		u.GoalWeight = *patch.GoalWeight
	}
	if patch.Age != nil {
		u.Age = *patch.Age
	}
	if patch.FitnessLevel != nil {
		u.FitnessLevel = *patch.FitnessLevel
	}
	if patch.DailyCalorieGoal != nil {
		u.DailyCalorieGoal = *patch.DailyCalorieGoal
	}
	if patch.DailyStepsGoal != nil {
		u.DailyStepsGoal = *patch.DailyStepsGoal
	}
	if patch.WorkoutFrequency != nil {
		u.WorkoutFrequency = *patch.WorkoutFrequency
	}

	s.users[id] = u
	return u, nil
}
