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

type AuthController struct {
	Store *store.Store
}

func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{Store: s}
}

type RegisterInput struct {
	Username         string  `json:"username" binding:"required"`
	Password         string  `json:"password" binding:"required"`
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	GoalWeight       float64 `json:"goalWeight"`
	Age              int     `json:"age"`
	FitnessLevel     string  `json:"fitnessLevel"`
	DailyCalorieGoal int     `json:"dailyCalorieGoal"`
	DailyStepsGoal   int     `json:"dailyStepsGoal"`
	WorkoutFrequency int     `json:"workoutFrequency"`
}

// authResponse flattens the user fields and adds the session token.
type authResponse struct {
	models.User
	Token string `json:"token,omitempty"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(ac.Store, models.User{
		Username:         input.Username,
		Password:         input.Password,
		Height:           input.Height,
		Weight:           input.Weight,
		GoalWeight:       input.GoalWeight,
		Age:              input.Age,
		FitnessLevel:     input.FitnessLevel,
		DailyCalorieGoal: input.DailyCalorieGoal,
		DailyStepsGoal:   input.DailyStepsGoal,
		WorkoutFrequency: input.WorkoutFrequency,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, authResponse{User: user, Token: token})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(ac.Store, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, authResponse{User: user, Token: token})
}

// Logout is a stateless acknowledgement; there is no server-side session to
// invalidate.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me resolves the authenticated user from the token claims.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetInt("userID")
	user, err := ac.Store.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
