package services

import (
	"sort"
	"time"

	"github.com/mariveldt/velle/internal/models"
)

// AverageCycleLength returns the rounded mean gap in days between consecutive
// period start dates, taken in ascending date order regardless of how the
// records were stored. Fewer than two records yields the 28-day default.
//
// Gaps are not clamped here: a single unusually short or long real gap is
// allowed to pull the average. This matches the recorded per-record cycle
// lengths only loosely; the two values are kept independent on purpose.
func AverageCycleLength(records []models.PeriodRecord) int {
	starts := sortedStartDates(records)
	if len(starts) < 2 {
		return models.DefaultCycleLength
	}

	totalGapDays := 0
	for i := 1; i < len(starts); i++ {
		totalGapDays += daysBetween(starts[i-1], starts[i])
	}

	return int(float64(totalGapDays)/float64(len(starts)-1) + 0.5)
}

func sortedStartDates(records []models.PeriodRecord) []time.Time {
	starts := make([]time.Time, 0, len(records))
	for _, record := range records {
		starts = append(starts, dateOnly(record.StartDate))
	}
	sort.Slice(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})
	return starts
}

// daysBetween counts whole calendar days from one date to another; any
// time-of-day component is discarded first.
func daysBetween(from time.Time, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}
