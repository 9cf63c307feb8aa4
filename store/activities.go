package store

import (
	"sort"
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
)

func (s *Store) GetActivity(id int) (models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[id]
	if !ok {
		return models.Activity{}, ErrNotFound
	}
	return a, nil
}

func (s *Store) GetActivitiesByUser(userID int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Activity, 0)
	for _, a := range s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetActivityByDate finds the user's record for the given calendar day.
func (s *Store) GetActivityByDate(userID int, date time.Time) (models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.activities {
		if a.UserID == userID && sameDay(a.Date, date) {
			return a, nil
		}
	}
	return models.Activity{}, ErrNotFound
}

// UpsertActivity keeps the one-record-per-user-per-day invariant: the lookup
// by userId + calendar day and the write happen under one lock.
func (s *Store) UpsertActivity(userID int, date time.Time, steps, caloriesBurned, activeMinutes int) models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.activities {
		if a.UserID == userID && sameDay(a.Date, date) {
			a.Steps = steps
			a.CaloriesBurned = caloriesBurned
			a.ActiveMinutes = activeMinutes
			s.activities[id] = a
			return a
		}
	}

	a := models.Activity{
		ID:             s.nextActivityID,
		UserID:         userID,
		Date:           date,
		Steps:          steps,
		CaloriesBurned: caloriesBurned,
		ActiveMinutes:  activeMinutes,
	}
	s.nextActivityID++
	s.activities[a.ID] = a
	return a
}

// UpdateActivity shallow-merges the patch onto the stored record.
func (s *Store) UpdateActivity(id int, patch models.ActivityUpdate) (models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[id]
	if !ok {
		return models.Activity{}, ErrNotFound
	}
	if patch.Steps != nil {
		a.Steps = *patch.Steps
	}
	if patch.CaloriesBurned != nil {
		a.CaloriesBurned = *patch.CaloriesBurned
	}
	if patch.ActiveMinutes != nil {
		a.ActiveMinutes = *patch.ActiveMinutes
	}
	s.activities[id] = a
	return a, nil
}
