package entity

import "time"

// WeightEntry is a single body-weight measurement owned by one user.
type WeightEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	WeightKg  float64   `json:"weight_kg"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats is the aggregate summary shown on the dashboard.
type DashboardStats struct {
	Username              string `json:"username"`
	TotalWorkouts         int    `json:"total_workouts"`
	TotalCaloriesBurned   int    `json:"total_calories_burned"`
	TotalCaloriesConsumed int    `json:"total_calories_consumed"`
}
