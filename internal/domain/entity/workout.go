package entity

// Workout is a single logged training session owned by one user.
// Dates are plain calendar days in YYYY-MM-DD form.
type Workout struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	WorkoutName     string `json:"workout_name"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	Date            string `json:"date"`
}

// WeeklyFrequency is the number of workouts logged in one ISO-ish week
// bucket (strftime %Y-W%W), used by the frequency analytics endpoint.
type WeeklyFrequency struct {
	Week         string `json:"week"`
	WorkoutCount int    `json:"workout_count"`
}
