package services

import (
	"time"

	"github.com/Rj088/Fitness-companion-app-sub000/models"
	"github.com/Rj088/Fitness-companion-app-sub000/store"
)

// LogMeal records one serving of a catalog food. The food must exist; meals
// never carry dangling references.
func LogMeal(s *store.Store, userID, foodID int, mealType string, servings float64, date time.Time) (models.UserMeal, error) {
	if _, err := s.GetUser(userID); err != nil {
		return models.UserMeal{}, err
	}
	f, err := s.GetFood(foodID)
	if err != nil {
		return models.UserMeal{}, err
	}

	m := s.CreateUserMeal(models.UserMeal{
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		FoodID:   foodID,
		Servings: servings,
	})
	m.Food = &f
	return m, nil
}

// ListMeals returns the user's meals with the food attached to each.
func ListMeals(s *store.Store, userID int, date *time.Time) []models.UserMeal {
	meals := s.GetUserMealsByUser(userID, date)
	for i := range meals {
		if f, err := s.GetFood(meals[i].FoodID); err == nil {
			meals[i].Food = &f
		}
	}
	return meals
}

// DeleteMeal removes a logged meal; deleting twice fails the second time.
func DeleteMeal(s *store.Store, id int) error {
	if !s.DeleteUserMeal(id) {
		return store.ErrNotFound
	}
	return nil
}
