package models

import "time"

// Activity is a per-user daily record; one row per user per calendar day.
type Activity struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	Date           time.Time `json:"date"`
	Steps          int       `json:"steps"`
	CaloriesBurned int       `json:"caloriesBurned"`
	ActiveMinutes  int       `json:"activeMinutes"`
}

// ActivityUpdate carries a partial change; nil fields are left as-is.
type ActivityUpdate struct {
	Steps          *int `json:"steps"`
	CaloriesBurned *int `json:"caloriesBurned"`
	ActiveMinutes  *int `json:"activeMinutes"`
}
