package routes

import (
	"net/http"

	"github.com/Rj088/Fitness-companion-app-sub000/controllers"
	"github.com/Rj088/Fitness-companion-app-sub000/middlewares"
	"github.com/Rj088/Fitness-companion-app-sub000/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every controller around the injected store.
func SetupRouter(s *store.Store) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	auth := controllers.NewAuthController(s)
	users := controllers.NewUserController(s)
	workouts := controllers.NewWorkoutController(s)
	foods := controllers.NewFoodController(s)
	meals := controllers.NewMealController(s)
	activities := controllers.NewActivityController(s)
	weights := controllers.NewWeightLogController(s)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)
		api.POST("/logout", auth.Logout)
		api.GET("/me", middlewares.AuthMiddleware(), auth.Me)

		api.POST("/users", auth.Register)
		api.GET("/users/:id", users.GetUser)
		api.PATCH("/users/:id", users.UpdateUser)
		api.GET("/users/:id/bmi", users.GetBMI)

		api.GET("/workouts", workouts.ListWorkouts)
		api.GET("/workouts/:id", workouts.GetWorkout)
		api.GET("/users/:id/workouts", workouts.ListUserWorkouts)
		api.POST("/users/:id/workouts", workouts.StartWorkout)
		api.PATCH("/users/workouts/:id/complete", workouts.CompleteWorkout)

		api.GET("/foods", foods.ListFoods)
		api.GET("/foods/:id", foods.GetFood)
		api.POST("/foods", foods.CreateFood)

		api.GET("/users/:id/meals", meals.ListMeals)
		api.POST("/users/:id/meals", meals.LogMeal)
		api.DELETE("/users/meals/:id", meals.DeleteMeal)

		api.GET("/users/:id/activities", activities.ListActivities)
		api.POST("/users/:id/activities", activities.LogActivity)
		api.PATCH("/users/activities/:id", activities.UpdateActivity)

		api.GET("/users/:id/weight-logs", weights.ListWeightLogs)
		api.POST("/users/:id/weight-logs", weights.LogWeight)
	}

	return r
}
