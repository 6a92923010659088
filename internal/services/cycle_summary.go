package services

import (
	"sort"
	"time"

	"github.com/mariveldt/velle/internal/models"
)

// CycleSummary is the derived read-side view of a user's period history. It
// is recomputed from the full record snapshot on every request and must not
// be cached across requests: any insert or delete invalidates it.
type CycleSummary struct {
	History            []models.PeriodRecord `json:"history"`
	Annotations        []CalendarAnnotation  `json:"calendar"`
	AverageCycleLength int                   `json:"average_cycle_length"`
	NextPeriodDays     *int                  `json:"next_period_days"`
	PredictedStart     *time.Time            `json:"predicted_start,omitempty"`
}

// BuildCycleSummary folds an unordered record snapshot into the summary
// consumed by the calendar UI. Pure function: the input slice is not
// mutated and identical input always yields identical output.
func BuildCycleSummary(records []models.PeriodRecord, today time.Time) CycleSummary {
	history := make([]models.PeriodRecord, 0, len(records))
	history = append(history, records...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].StartDate.After(history[j].StartDate)
	})

	summary := CycleSummary{
		History:            history,
		AverageCycleLength: AverageCycleLength(records),
	}
	summary.Annotations = BuildCalendarAnnotations(history)

	if len(history) == 0 {
		return summary
	}

	predictedStart, daysUntil, ok := PredictNextPeriod(history[0], summary.AverageCycleLength, today)
	if !ok {
		return summary
	}

	summary.PredictedStart = &predictedStart
	summary.NextPeriodDays = &daysUntil
	summary.Annotations = append(summary.Annotations, CalendarAnnotation{
		Date: predictedStart,
		Kind: AnnotationPredicted,
	})
	return summary
}
