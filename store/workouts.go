package store

import (
	"sort"
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
)

func (s *Store) CreateWorkout(w models.Workout) models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = s.nextWorkoutID
	s.nextWorkoutID++
	s.workouts[w.ID] = w
	return w
}

func (s *Store) GetWorkout(id int) (models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.workouts[id]
	if !ok {
		return models.Workout{}, ErrNotFound
	}
	return w, nil
}

// GetWorkouts lists the catalog in insertion order, optionally filtered by
// category. Empty category means no filter.
func (s *Store) GetWorkouts(category string) []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		if category != "" && w.Category != category {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) CreateUserWorkout(uw models.UserWorkout) models.UserWorkout {
	s.mu.Lock()
	defer s.mu.Unlock()

	uw.ID = s.nextUserWorkoutID
	s.nextUserWorkoutID++
	s.userWorkouts[uw.ID] = uw
	return uw
}

func (s *Store) GetUserWorkout(id int) (models.UserWorkout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uw, ok := s.userWorkouts[id]
	if !ok {
		return models.UserWorkout{}, ErrNotFound
	}
	return uw, nil
}

// GetUserWorkoutsByUser returns the user's sessions in insertion order; a
// non-nil date keeps only same-day matches.
func (s *Store) GetUserWorkoutsByUser(userID int, date *time.Time) []models.UserWorkout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserWorkout, 0)
	for _, uw := range s.userWorkouts {
		if uw.UserID != userID {
			continue
		}
		if date != nil && !sameDay(uw.Date, *date) {
			continue
		}
		out = append(out, uw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CompleteUserWorkout marks the session done and applies the derived
// duration/calories in the same locked step.
func (s *Store) CompleteUserWorkout(id, duration, caloriesBurned int) (models.UserWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uw, ok := s.userWorkouts[id]
	if !ok {
		return models.UserWorkout{}, ErrNotFound
	}
	uw.Duration = duration
	uw.CaloriesBurned = caloriesBurned
	uw.Completed = true
	s.userWorkouts[id] = uw
	return uw, nil
}
