package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mariveldt/velle/internal/models"
	"gorm.io/gorm"
)

func TestAnalyzeSleep(t *testing.T) {
	t.Parallel()

	analysis := AnalyzeSleep(models.SleepRecord{
		DurationHours:  8,
		WakeCount:      2,
		LatencyMinutes: 20,
		Dreaming:       true,
	})

	if analysis.Score != 77 {
		t.Fatalf("expected score 77, got %.1f", analysis.Score)
	}
	if analysis.DeepSleepHours != 1.6 {
		t.Fatalf("expected 1.6h deep sleep, got %.1f", analysis.DeepSleepHours)
	}
	// 8 - 2*0.15 - 20/60 rounded to a tenth.
	if analysis.EffectiveSleepHours != 7.4 {
		t.Fatalf("expected 7.4h effective sleep, got %.1f", analysis.EffectiveSleepHours)
	}
	if analysis.DeepSleepRatio != 20 {
		t.Fatalf("expected 20%% deep sleep ratio, got %.1f", analysis.DeepSleepRatio)
	}
}

func TestAnalyzeSleepClampsScore(t *testing.T) {
	t.Parallel()

	restless := AnalyzeSleep(models.SleepRecord{
		DurationHours:  3,
		WakeCount:      15,
		LatencyMinutes: 90,
	})
	if restless.Score != 0 {
		t.Fatalf("expected score clamped to 0, got %.1f", restless.Score)
	}

	perfect := AnalyzeSleep(models.SleepRecord{DurationHours: 8})
	if perfect.Score != 100 {
		t.Fatalf("expected score 100, got %.1f", perfect.Score)
	}
}

func TestAnalyzeSleepShortNightDeepFloor(t *testing.T) {
	t.Parallel()

	analysis := AnalyzeSleep(models.SleepRecord{DurationHours: 4})
	if analysis.DeepSleepHours != 1.2 {
		t.Fatalf("expected deep sleep floored at 1.2h, got %.1f", analysis.DeepSleepHours)
	}
}

type fakeSleepStore struct {
	records []models.SleepRecord
	nextID  uint
}

func (store *fakeSleepStore) ListByUser(userID uint) ([]models.SleepRecord, error) {
	matched := make([]models.SleepRecord, 0, len(store.records))
	for _, record := range store.records {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (store *fakeSleepStore) ExistsByUserAndDate(userID uint, date time.Time) (bool, error) {
	for _, record := range store.records {
		if record.UserID == userID && record.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (store *fakeSleepStore) Create(record *models.SleepRecord) error {
	store.nextID++
	record.ID = store.nextID
	store.records = append(store.records, *record)
	return nil
}

func (store *fakeSleepStore) DeleteByID(userID uint, recordID uint) error {
	for index, record := range store.records {
		if record.UserID == userID && record.ID == recordID {
			store.records = append(store.records[:index], store.records[index+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestSleepServiceRejectsDuplicateDate(t *testing.T) {
	t.Parallel()

	service := NewSleepService(&fakeSleepStore{})
	night := models.SleepRecord{Date: mustParseDay("2024-03-01"), DurationHours: 7.5}

	if _, err := service.Record(1, night); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if _, err := service.Record(1, night); !errors.Is(err, ErrSleepRecordExists) {
		t.Fatalf("expected duplicate-date rejection, got %v", err)
	}
	// A different user may log the same date.
	if _, err := service.Record(2, night); err != nil {
		t.Fatalf("other user's record: %v", err)
	}
}
