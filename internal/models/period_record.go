package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

// DefaultCycleLength is used whenever no preceding record exists or the
// computed gap is non-positive.
const DefaultCycleLength = 28

// PeriodRecord is one logged menstrual period. CycleLength and Duration are
// computed once at ingestion and never recomputed on the read path.
type PeriodRecord struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	PublicID      string    `gorm:"uniqueIndex;not null" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"-"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	CycleLength   int       `gorm:"not null" json:"cycle_length"`
	Duration      int       `gorm:"not null" json:"duration"`
	FlowIntensity string    `gorm:"not null;default:medium" json:"flow_intensity"`
	Symptoms      []string  `gorm:"serializer:json" json:"symptoms"`
	CreatedAt     time.Time `json:"-"`
}
