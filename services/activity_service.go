package services

import (
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/store"
)

// LogActivity records the user's numbers for a calendar day. Posting twice
// for the same day updates the single existing record.
func LogActivity(s *store.Store, userID int, date time.Time, steps, caloriesBurned, activeMinutes int) (models.Activity, error) {
	if _, err := s.GetUser(userID); err != nil {
		return models.Activity{}, err
	}
	return s.UpsertActivity(userID, date, steps, caloriesBurned, activeMinutes), nil
}

// ActivityForDate returns the user's record for the day, or a zeroed default
// so clients always have something to render.
func ActivityForDate(s *store.Store, userID int, date time.Time) models.Activity {
	a, err := s.GetActivityByDate(userID, date)
	if err != nil {
		return models.Activity{UserID: userID, Date: date}
	}
	return a
}
