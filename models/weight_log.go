package models

import "time"

// WeightLog is append-only; writing one also overwrites the owner's
// current weight.
type WeightLog struct {
	ID     int       `json:"id"`
	UserID int       `json:"userId"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"` // kg
}
