package entity

// Meal is a single logged meal with its macro breakdown, owned by one user.
type Meal struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	MealName string  `json:"meal_name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Date     string  `json:"date"`
}

// MacroTotals aggregates the macros consumed on a single day.
type MacroTotals struct {
	Date          string  `json:"date"`
	TotalCalories int     `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFats     float64 `json:"total_fats"`
}
