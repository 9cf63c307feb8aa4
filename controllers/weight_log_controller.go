package controllers

import (
	"net/http"

	"github.com/Rj088/Fitness-companion-app-sub000/services"
	"github.com/Rj088/Fitness-companion-app-sub000/store"

	"github.com/gin-gonic/gin"
)

type WeightLogController struct {
	Store *store.Store
}

func NewWeightLogController(s *store.Store) *WeightLogController {
	return &WeightLogController{Store: s}
}

// GET /users/:id/weight-logs
func (wc *WeightLogController) ListWeightLogs(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wc.Store.GetWeightLogsByUser(userID))
}

type LogWeightInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Date   string  `json:"date"`
}

// POST /users/:id/weight-logs
// Appends to the history and moves the user's current weight.
func (wc *WeightLogController) LogWeight(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input LogWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateOrNow(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	wl, err := services.LogWeight(wc.Store, userID, input.Weight, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusCreated, wl)
}
