package store

import "github.com/Rj088/Fitness-companion-app-sub000/models"

// Seed loads the built-in workout and food catalogs. Catalog entries are
// read-only after this point (foods can still be added via the API).
func (s *Store) Seed() {
	for _, w := range seedWorkouts {
		s.CreateWorkout(w)
	}
	for _, f := range seedFoods {
		s.CreateFood(f)
	}
}

var seedWorkouts = []models.Workout{
	{
		Name:           "Full Body Blast",
		Description:    "A quick circuit hitting every major muscle group.",
		Duration:       30,
		CaloriesBurned: 280,
		Difficulty:     "beginner",
		Category:       "strength",
		Exercises: []models.Exercise{
			{ID: 1, Name: "Bodyweight Squat", Sets: 3, Reps: 15},
			{ID: 2, Name: "Push-Up", Sets: 3, Reps: 10},
			{ID: 3, Name: "Plank", Duration: 60, Description: "Hold with a flat back."},
			{ID: 4, Name: "Lunge", Sets: 3, Reps: 12},
		},
	},
	{
		Name:           "Morning Cardio",
		Description:    "Steady-state cardio to start the day.",
		Duration:       20,
		CaloriesBurned: 220,
		Difficulty:     "beginner",
		Category:       "cardio",
		Exercises: []models.Exercise{
			{ID: 1, Name: "Jumping Jacks", Duration: 120},
			{ID: 2, Name: "High Knees", Duration: 90},
			{ID: 3, Name: "Mountain Climbers", Duration: 60},
		},
	},
	{
		Name:           "Upper Body Strength",
		Description:    "Push and pull work for chest, back and arms.",
		Duration:       45,
		CaloriesBurned: 350,
		Difficulty:     "intermediate",
		Category:       "strength",
		Exercises: []models.Exercise{
			{ID: 1, Name: "Push-Up", Sets: 4, Reps: 12},
			{ID: 2, Name: "Dumbbell Row", Sets: 4, Reps: 10},
			{ID: 3, Name: "Shoulder Press", Sets: 3, Reps: 10},
			{ID: 4, Name: "Bicep Curl", Sets: 3, Reps: 12},
			{ID: 5, Name: "Tricep Dip", Sets: 3, Reps: 10},
		},
	},
	{
		Name:           "HIIT Burner",
		Description:    "Intervals of all-out effort with short rests.",
		Duration:       25,
		CaloriesBurned: 320,
		Difficulty:     "advanced",
		Category:       "hiit",
		Exercises: []models.Exercise{
			{ID: 1, Name: "Burpee", Duration: 45},
			{ID: 2, Name: "Jump Squat", Duration: 45},
			{ID: 3, Name: "Sprint in Place", Duration: 30},
			{ID: 4, Name: "Rest", Duration: 30, Description: "Walk it off."},
		},
	},
	{
		Name:           "Evening Stretch",
		Description:    "Gentle flexibility work to wind down.",
		Duration:       15,
		CaloriesBurned: 60,
		Difficulty:     "beginner",
		Category:       "flexibility",
		Exercises: []models.Exercise{
			{ID: 1, Name: "Hamstring Stretch", Duration: 60},
			{ID: 2, Name: "Quad Stretch", Duration: 60},
			{ID: 3, Name: "Child's Pose", Duration: 90},
		},
	},
}

var seedFoods = []models.Food{
	{Name: "Oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, ServingSize: "1 cup cooked"},
	{Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, ServingSize: "1 medium"},
	{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingSize: "100 g"},
	{Name: "Brown Rice", Calories: 215, Protein: 5, Carbs: 45, Fat: 1.8, ServingSize: "1 cup cooked"},
	{Name: "Greek Yogurt", Calories: 100, Protein: 17, Carbs: 6, Fat: 0.7, ServingSize: "170 g"},
	{Name: "Almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, ServingSize: "28 g"},
	{Name: "Chocolate Milk", Calories: 190, Protein: 8, Carbs: 30, Fat: 5, ServingSize: "1 cup"},
	{Name: "Scrambled Eggs", Calories: 182, Protein: 12, Carbs: 2, Fat: 14, ServingSize: "2 eggs"},
	{Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, ServingSize: "1 medium"},
	{Name: "Salmon Fillet", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, ServingSize: "100 g"},
	{Name: "Whole Wheat Bread", Calories: 81, Protein: 4, Carbs: 14, Fat: 1.1, ServingSize: "1 slice"},
	{Name: "Peanut Butter", Calories: 188, Protein: 8, Carbs: 6, Fat: 16, ServingSize: "2 tbsp"},
}
