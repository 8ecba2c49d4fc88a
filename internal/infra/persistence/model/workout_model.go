package model

// WorkoutModel mirrors the 'workouts' table. Dates are stored as
// YYYY-MM-DD strings so lexicographic comparison matches chronological order.
type WorkoutModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	UserID          int64  `gorm:"not null;index"`
	WorkoutName     string `gorm:"type:varchar(100);not null"`
	DurationMinutes int    `gorm:"not null"`
	CaloriesBurned  int    `gorm:"not null"`
	Date            string `gorm:"type:varchar(10);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workouts"
}
