package models

import "time"

// Food is a catalog entry, read-only after creation.
type Food struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"`
}

// UserMeal is one logged serving of a catalog food.
type UserMeal struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	Date     time.Time `json:"date"`
	MealType string    `json:"mealType"` // breakfast | lunch | dinner | snack
	FoodID   int       `json:"foodId"`
	Servings float64   `json:"servings"`
	Food     *Food     `json:"food,omitempty"`
}
