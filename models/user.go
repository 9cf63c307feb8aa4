package models

import "time"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// Scrypt hash, never serialized.
	Password         string    `json:"-"`
	Height           float64   `json:"height,omitempty"`
	Weight           float64   `json:"weight,omitempty"`
	GoalWeight       float64   `json:"goalWeight,omitempty"`
	Age              int       `json:"age,omitempty"`
	FitnessLevel     string    `json:"fitnessLevel,omitempty"`
	DailyCalorieGoal int       `json:"dailyCalorieGoal,omitempty"`
	DailyStepsGoal   int       `json:"dailyStepsGoal,omitempty"`
	WorkoutFrequency int       `json:"workoutFrequency,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UserUpdate carries a partial profile change; nil fields are left as-is.
type UserUpdate struct {
	Username         *string  `json:"username"`
	Password         *string  `json:"password"`
	Height           *float64 `json:"height"`
	Weight           *float64 `json:"weight"`
	GoalWeight       *float64 `json:"goalWeight"`
	Age              *int     `json:"age"`
	FitnessLevel     *string  `json:"fitnessLevel"`
	DailyCalorieGoal *int     `json:"dailyCalorieGoal"`
	DailyStepsGoal   *int     `json:"dailyStepsGoal"`
	WorkoutFrequency *int     `json:"workoutFrequency"`
}
