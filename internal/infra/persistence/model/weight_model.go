package model

import "time"

// WeightEntryModel mirrors the 'weights' table.
type WeightEntryModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	UserID    int64   `gorm:"not null;index"`
	WeightKg  float64 `gorm:"not null"`
	Date      string  `gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeightEntryModel) TableName() string {
	return "weights"
}
