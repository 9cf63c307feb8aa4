package controllers

import (
	"errors"
	"net/http"

	"github.com/Rj088/Fitness-companion-app-sub000/services"
	"github.com/Rj088/Fitness-companion-app-sub000/store"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Store *store.Store
}

func NewMealController(s *store.Store) *MealController {
	return &MealController{Store: s}
}

// GET /users/:id/meals?date=
func (mc *MealController) ListMeals(c *gin.Context) {
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

	c.JSON(http.StatusOK, services.ListMeals(mc.Store, userID, date))
}

type LogMealInput struct {
	FoodID   int     `json:"foodId" binding:"required"`
	MealType string  `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Servings float64 `json:"servings" binding:"required,gt=0"`
	Date     string  `json:"date"`
}

// POST /users/:id/meals
func (mc *MealController) LogMeal(c *gin.Context) {
	userID, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateOrNow(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	meal, err := services.LogMeal(mc.Store, userID, input.FoodID, input.MealType, input.Servings, date)
	if err != nil {
		// unknown user or food id
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// DELETE /users/meals/:id
func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.DeleteMeal(mc.Store, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
