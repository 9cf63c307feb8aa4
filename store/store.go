package store

import (
	"errors"
	"sync"
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

// Store holds every entity map behind a single mutex. It is the only shared
// state in the process; handlers receive it by injection and must not keep
// references into it (all reads return copies).
type Store struct {
	mu sync.RWMutex

	users        map[int]models.User
	workouts     map[int]models.Workout
	userWorkouts map[int]models.UserWorkout
	foods        map[int]models.Food
	meals        map[int]models.UserMeal
	activities   map[int]models.Activity
	weightLogs   map[int]models.WeightLog

	nextUserID        int
	nextWorkoutID     int
	nextUserWorkoutID int
	nextFoodID        int
	nextMealID        int
	nextActivityID    int
	nextWeightLogID   int
}

func New() *Store {
	return &Store{
		users:        make(map[int]models.User),
		workouts:     make(map[int]models.Workout),
		userWorkouts: make(map[int]models.UserWorkout),
		foods:        make(map[int]models.Food),
		meals:        make(map[int]models.UserMeal),
		activities:   make(map[int]models.Activity),
		weightLogs:   make(map[int]models.WeightLog),

		nextUserID:        1,
		nextWorkoutID:     1,
		nextUserWorkoutID: 1,
		nextFoodID:        1,
		nextMealID:        1,
		nextActivityID:    1,
		nextWeightLogID:   1,
	}
}

// sameDay is the single date-matching rule: calendar year, month and day in
// server local time, ignoring time-of-day.
func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
