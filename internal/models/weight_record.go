package models

import "time"

type WeightRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_weight_user_date" json:"-"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weight_user_date" json:"date"`
	WeightKg  float64   `gorm:"not null" json:"weight_kg"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
