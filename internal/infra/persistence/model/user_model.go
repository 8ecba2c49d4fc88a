package model

import "time"

// UserModel mirrors the 'users' table. The bearer-token columns live on the
// user row itself: at most one token per user, flagged valid until revoked.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(30);uniqueIndex;not null"`
	Email        string  `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Token        *string `gorm:"type:varchar(255);uniqueIndex"`
	TokenValid   bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Workouts []WorkoutModel     `gorm:"foreignKey:UserID"`
	Meals    []MealModel        `gorm:"foreignKey:UserID"`
	Weights  []WeightEntryModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
