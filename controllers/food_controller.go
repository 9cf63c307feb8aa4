package controllers

import (
	"net/http"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/store"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Store *store.Store
}

func NewFoodController(s *store.Store) *FoodController {
	return &FoodController{Store: s}
}

// GET /foods?search=
func (fc *FoodController) ListFoods(c *gin.Context) {
	if q := c.Query("search"); q != "" {
		c.JSON(http.StatusOK, fc.Store.SearchFoods(q))
		return
	}
	c.JSON(http.StatusOK, fc.Store.GetFoods())
}

// GET /foods/:id
func (fc *FoodController) GetFood(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := fc.Store.GetFood(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, f)
}

type CreateFoodInput struct {
	Name        string  `json:"name" binding:"required"`
	Calories    int     `json:"calories" binding:"required"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"`
}

// POST /foods
func (fc *FoodController) CreateFood(c *gin.Context) {
	var input CreateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f := fc.Store.CreateFood(models.Food{
		Name:        input.Name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		ServingSize: input.ServingSize,
	})
	c.JSON(http.StatusCreated, f)
}
