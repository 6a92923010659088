package services

import (
	"time"

	"github.com/mariveldt/velle/internal/models"
)

// PredictNextPeriod projects the next period start from the most recent
// record's end date plus the running average cycle length. The countdown is
// clamped at zero: a predicted date already in the past still reads as "due
// today", never negative. ok is false when the record carries no end date,
// in which case no prediction is made at all.
func PredictNextPeriod(mostRecent models.PeriodRecord, averageCycleLength int, today time.Time) (predictedStart time.Time, daysUntil int, ok bool) {
	if mostRecent.EndDate.IsZero() {
		return time.Time{}, 0, false
	}

	predictedStart = dateOnly(mostRecent.EndDate).AddDate(0, 0, averageCycleLength)
	daysUntil = daysBetween(today, predictedStart)
	if daysUntil < 0 {
		daysUntil = 0
	}
	return predictedStart, daysUntil, true
}
