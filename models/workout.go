package models

import "time"

// Workout is a catalog entry; the exercise list is part of its value.
type Workout struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Duration       int        `json:"duration"` // minutes
	CaloriesBurned int        `json:"caloriesBurned"`
	Difficulty     string     `json:"difficulty"`
	Category       string     `json:"category"`
	Exercises      []Exercise `json:"exercises"`
}

// Exercise has either sets/reps or a duration in seconds.
// Its id is only unique within the owning workout.
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Sets        int    `json:"sets,omitempty"`
	Reps        int    `json:"reps,omitempty"`
	Duration    int    `json:"duration,omitempty"` // seconds
	Description string `json:"description,omitempty"`
}

// UserWorkout is one started (and possibly completed) session of a catalog
// workout. Workout is attached on the way out of the API.
type UserWorkout struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	WorkoutID      int       `json:"workoutId"`
	Date           time.Time `json:"date"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Completed      bool      `json:"completed"`
	Workout        *Workout  `json:"workout,omitempty"`
}
