package services

import (
	"testing"
	"time"

	"github.com/mariveldt/velle/internal/models"
)

func TestAverageCycleLengthFromTwoRecords(t *testing.T) {
	t.Parallel()

	records := []models.PeriodRecord{
		makeRecord("2024-01-01", "2024-01-05", 28),
		makeRecord("2024-01-29", "2024-02-02", 24),
	}

	if got := AverageCycleLength(records); got != 28 {
		t.Fatalf("expected average cycle length 28, got %d", got)
	}
}

func TestAverageCycleLengthDefaultsWithSparseHistory(t *testing.T) {
	t.Parallel()

	if got := AverageCycleLength(nil); got != models.DefaultCycleLength {
		t.Fatalf("expected default %d for empty history, got %d", models.DefaultCycleLength, got)
	}

	single := []models.PeriodRecord{makeRecord("2024-01-01", "2024-01-05", 28)}
	if got := AverageCycleLength(single); got != models.DefaultCycleLength {
		t.Fatalf("expected default %d for one record, got %d", models.DefaultCycleLength, got)
	}
}

func TestAverageCycleLengthIgnoresInputOrder(t *testing.T) {
	t.Parallel()

	shuffled := []models.PeriodRecord{
		makeRecord("2024-02-26", "2024-03-02", 24),
		makeRecord("2024-01-01", "2024-01-05", 28),
		makeRecord("2024-01-29", "2024-02-02", 24),
	}

	if got := AverageCycleLength(shuffled); got != 28 {
		t.Fatalf("expected average cycle length 28 regardless of order, got %d", got)
	}
}

func TestAverageCycleLengthRoundsToNearestDay(t *testing.T) {
	t.Parallel()

	// Gaps of 27 and 28 days average to 27.5, which rounds up.
	records := []models.PeriodRecord{
		makeRecord("2024-01-01", "2024-01-05", 28),
		makeRecord("2024-01-28", "2024-02-01", 23),
		makeRecord("2024-02-25", "2024-02-29", 24),
	}

	if got := AverageCycleLength(records); got != 28 {
		t.Fatalf("expected rounded average 28, got %d", got)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 3, 0, 1, 0, 0, time.UTC)

	if got := daysBetween(from, to); got != 2 {
		t.Fatalf("expected 2 whole days, got %d", got)
	}
}

func makeRecord(start string, end string, cycleLength int) models.PeriodRecord {
	return models.PeriodRecord{
		StartDate:     mustParseDay(start),
		EndDate:       mustParseDay(end),
		CycleLength:   cycleLength,
		Duration:      0,
		FlowIntensity: models.FlowMedium,
	}
}

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}
