package services

import (
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/store"
)

// StartWorkout records a new session of a catalog workout. Both the user and
// the workout must exist; dangling references are rejected up front because
// every read path expands the workout inline.
func StartWorkout(s *store.Store, userID, workoutID int, date time.Time) (models.UserWorkout, error) {
	if _, err := s.GetUser(userID); err != nil {
		return models.UserWorkout{}, err
	}
	w, err := s.GetWorkout(workoutID)
	if err != nil {
		return models.UserWorkout{}, err
	}

	uw := s.CreateUserWorkout(models.UserWorkout{
		UserID:    userID,
		WorkoutID: workoutID,
		Date:      date,
	})
	uw.Workout = &w
	return uw, nil
}

// CompleteWorkout marks the session finished, deriving duration and calories
// from the referenced catalog workout.
func CompleteWorkout(s *store.Store, id int) (models.UserWorkout, error) {
	uw, err := s.GetUserWorkout(id)
	if err != nil {
		return models.UserWorkout{}, err
	}
	w, err := s.GetWorkout(uw.WorkoutID)
	if err != nil {
		return models.UserWorkout{}, err
	}

	uw, err = s.CompleteUserWorkout(id, w.Duration, w.CaloriesBurned)
	if err != nil {
		return models.UserWorkout{}, err
	}
	uw.Workout = &w
	return uw, nil
}

// ListUserWorkouts returns the user's sessions with the catalog workout
// attached to each.
func ListUserWorkouts(s *store.Store, userID int, date *time.Time) []models.UserWorkout {
	sessions := s.GetUserWorkoutsByUser(userID, date)
	for i := range sessions {
		if w, err := s.GetWorkout(sessions[i].WorkoutID); err == nil {
			sessions[i].Workout = &w
		}
	}
	return sessions
}
