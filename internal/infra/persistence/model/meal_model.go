package model

// MealModel mirrors the 'meals' table.
type MealModel struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	UserID   int64   `gorm:"not null;index"`
	MealName string  `gorm:"type:varchar(100);not null"`
	Calories int     `gorm:"not null"`
	Protein  float64 `gorm:"not null"`
	Carbs    float64 `gorm:"not null"`
	Fats     float64 `gorm:"not null"`
	Date     string  `gorm:"type:varchar(10);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
