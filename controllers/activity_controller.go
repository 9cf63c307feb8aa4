package controllers

import (
	"errors"
	"net/http"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/services"
	"github.com/Rj088/Fitness-companion-app-sub000/store"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Store *store.Store
}

func NewActivityController(s *store.Store) *ActivityController {
	return &ActivityController{Store: s}
}

// GET /users/:id/activities?date=
// With a date this answers a single record (zeroed default when none exists);
// without one it answers the full list.
func (ac *ActivityController) ListActivities(c *gin.Context) {
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

	if date != nil {
		c.JSON(http.StatusOK, services.ActivityForDate(ac.Store, userID, *date))
		return
	}
	c.JSON(http.StatusOK, ac.Store.GetActivitiesByUser(userID))
}

type LogActivityInput struct {
	Steps          int    `json:"steps"`
	CaloriesBurned int    `json:"caloriesBurned"`
	ActiveMinutes  int    `json:"activeMinutes"`
	Date           string `json:"date"`
}

// POST /users/:id/activities
// Posting twice for the same calendar day updates the existing record.
func (ac *ActivityController) LogActivity(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input LogActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateOrNow(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	a, err := services.LogActivity(ac.Store, userID, date, input.Steps, input.CaloriesBurned, input.ActiveMinutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// PATCH /users/activities/:id
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var patch models.ActivityUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := ac.Store.UpdateActivity(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}
