package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mariveldt/velle/internal/models"
)

var ErrSleepRecordExists = errors.New("a sleep record for this date already exists")

// SleepAnalysis carries the derived values shown next to a sleep record.
type SleepAnalysis struct {
	DurationHours       float64 `json:"duration_hours"`
	DeepSleepHours      float64 `json:"deep_sleep_hours"`
	EffectiveSleepHours float64 `json:"effective_sleep_hours"`
	DeepSleepRatio      float64 `json:"deep_sleep_ratio"`
	Score               float64 `json:"score"`
}

// AnalyzeSleep derives the dashboard numbers for one night: a fifth of the
// night counts as deep sleep (floored at 1.2h), wake-ups and latency eat
// into effective sleep, and the score starts at 100 with the result clamped
// to [0, 100].
func AnalyzeSleep(record models.SleepRecord) SleepAnalysis {
	duration := record.DurationHours

	deep := math.Max(1.2, duration*0.2)
	effective := math.Max(0, duration-float64(record.WakeCount)*0.15-float64(record.LatencyMinutes)/60)

	ratio := 0.0
	if duration > 0 {
		ratio = roundTenth(deep / duration * 100)
	}

	penalty := float64(record.WakeCount)*5 + float64(record.LatencyMinutes)*0.5
	if record.Dreaming {
		penalty += 3
	}
	score := math.Max(0, math.Min(100, 100-penalty))

	return SleepAnalysis{
		DurationHours:       roundTenth(duration),
		DeepSleepHours:      roundTenth(deep),
		EffectiveSleepHours: roundTenth(effective),
		DeepSleepRatio:      ratio,
		Score:               score,
	}
}

func roundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

type SleepRecordStore interface {
	ListByUser(userID uint) ([]models.SleepRecord, error)
	ExistsByUserAndDate(userID uint, date time.Time) (bool, error)
	Create(record *models.SleepRecord) error
	DeleteByID(userID uint, recordID uint) error
}

type SleepService struct {
	records SleepRecordStore
}

func NewSleepService(records SleepRecordStore) *SleepService {
	return &SleepService{records: records}
}

func (service *SleepService) List(userID uint) ([]models.SleepRecord, error) {
	return service.records.ListByUser(userID)
}

// Record stores one night of sleep; a second record for the same calendar
// date is rejected rather than merged.
func (service *SleepService) Record(userID uint, record models.SleepRecord) (models.SleepRecord, error) {
	record.UserID = userID
	record.Date = dateOnly(record.Date)

	exists, err := service.records.ExistsByUserAndDate(userID, record.Date)
	if err != nil {
		return models.SleepRecord{}, fmt.Errorf("check sleep record date: %w", err)
	}
	if exists {
		return models.SleepRecord{}, ErrSleepRecordExists
	}

	if err := service.records.Create(&record); err != nil {
		return models.SleepRecord{}, fmt.Errorf("store sleep record: %w", err)
	}
	return record, nil
}

func (service *SleepService) Delete(userID uint, recordID uint) error {
	return service.records.DeleteByID(userID, recordID)
}
