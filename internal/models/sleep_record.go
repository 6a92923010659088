package models

import "time"

type SleepRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:uidx_sleep_user_date" json:"-"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:uidx_sleep_user_date" json:"date"`
	SleepTime      string    `gorm:"not null" json:"sleep_time"`
	WakeTime       string    `gorm:"not null" json:"wake_time"`
	DurationHours  float64   `gorm:"not null" json:"duration_hours"`
	WakeCount      int       `gorm:"not null;default:0" json:"wake_count"`
	LatencyMinutes int       `gorm:"not null;default:0" json:"latency_minutes"`
	Dreaming       bool      `gorm:"not null;default:false" json:"dreaming"`
	Activity       string    `json:"activity"`
	CreatedAt      time.Time `json:"-"`
}
