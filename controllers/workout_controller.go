package controllers

import (
	"errors"
	"net/http"

	"github.com/Rj088/Fitness-companion-app-sub000/services"
	"github.com/Rj088/Fitness-companion-app-sub000/store"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Store *store.Store
}

func NewWorkoutController(s *store.Store) *WorkoutController {
	return &WorkoutController{Store: s}
}

// GET /workouts?category=
func (wc *WorkoutController) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, wc.Store.GetWorkouts(c.Query("category")))
}

// GET /workouts/:id
func (wc *WorkoutController) GetWorkout(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := wc.Store.GetWorkout(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		return
	}
	c.JSON(http.StatusOK, w)
}

// GET /users/:id/workouts?date=
func (wc *WorkoutController) ListUserWorkouts(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.ListUserWorkouts(wc.Store, userID, date))
}

type StartWorkoutInput struct {
	WorkoutID int    `json:"workoutId" binding:"required"`
	Date      string `json:"date"`
}

// POST /users/:id/workouts
func (wc *WorkoutController) StartWorkout(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input StartWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateOrNow(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	uw, err := services.StartWorkout(wc.Store, userID, input.WorkoutID, date)
	if err != nil {
		// unknown user or workout id
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, uw)
}

// PATCH /users/workouts/:id/complete
func (wc *WorkoutController) CompleteWorkout(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uw, err := services.CompleteWorkout(wc.Store, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, uw)
}
