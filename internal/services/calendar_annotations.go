package services

import (
	"time"

	"github.com/mariveldt/velle/internal/models"
)

const (
	AnnotationPast      = "past"
	AnnotationOvulation = "ovulation"
	AnnotationPredicted = "predicted"
)

// CalendarAnnotation tags one calendar day for the UI. The same date may be
// emitted more than once with different kinds.
type CalendarAnnotation struct {
	Date time.Time `json:"date"`
	Kind string    `json:"type"`
}

// BuildCalendarAnnotations expands every record into day markers: one past
// entry per period day, plus a 7-day ovulation window anchored to that
// record's own cycle length (not the running average). Each record is
// projected independently; windows from consecutive short cycles may overlap
// and are all emitted. A consumer that can only render one marker per day
// should prefer past over ovulation over predicted.
func BuildCalendarAnnotations(records []models.PeriodRecord) []CalendarAnnotation {
	annotations := make([]CalendarAnnotation, 0, len(records)*12)

	for _, record := range records {
		start := dateOnly(record.StartDate)
		end := dateOnly(record.EndDate)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			annotations = append(annotations, CalendarAnnotation{Date: day, Kind: AnnotationPast})
		}

		ovulationStart := start.AddDate(0, 0, record.CycleLength/2-5)
		ovulationEnd := ovulationStart.AddDate(0, 0, 6)
		for day := ovulationStart; !day.After(ovulationEnd); day = day.AddDate(0, 0, 1) {
			annotations = append(annotations, CalendarAnnotation{Date: day, Kind: AnnotationOvulation})
		}
	}

	return annotations
}
