package services

import (
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/store"
)

// LogWeight appends a weight entry; the store also moves the user's current
// weight to the new value.
func LogWeight(s *store.Store, userID int, weight float64, date time.Time) (models.WeightLog, error) {
	return s.CreateWeightLog(models.WeightLog{
		UserID: userID,
		Date:   date,
		Weight: weight,
	})
}
