package controllers

import (
	"errors"
	"net/http"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/services"
	"github.com/Rj088/Fitness-companion-app-sub000/store"
	"github.com/Rj088/Fitness-companion-app-sub000/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Store *store.Store
}

func NewUserController(s *store.Store) *UserController {
	return &UserController{Store: s}
}

// GET /users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Store.GetUser(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PATCH /users/:id
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var patch models.UserUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUser(uc.Store, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, store.ErrDuplicateUsername):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /users/:id/bmi
func (uc *UserController) GetBMI(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Store.GetUser(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmi": bmi, "category": utils.BMICategory(bmi)})
}
