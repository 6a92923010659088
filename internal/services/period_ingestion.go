package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mariveldt/velle/internal/models"
)

var ErrInvalidDateRange = errors.New("end date is before start date")

// PeriodInput is a candidate period as submitted by a client, before any
// derived fields exist.
type PeriodInput struct {
	StartDate     time.Time
	EndDate       time.Time
	FlowIntensity string
	Symptoms      []string
}

// PreparePeriodRecord derives the insertion-time fields for a candidate
// period. The cycle length is the gap from the chronologically preceding
// record's end date — the record with the greatest end date strictly before
// the candidate's start, which is not necessarily the one inserted last.
// A missing predecessor or a non-positive gap falls back to the 28-day
// default. Candidates whose end date precedes their start date are rejected.
func PreparePeriodRecord(input PeriodInput, existing []models.PeriodRecord) (models.PeriodRecord, error) {
	start := dateOnly(input.StartDate)
	end := dateOnly(input.EndDate)
	if end.Before(start) {
		return models.PeriodRecord{}, ErrInvalidDateRange
	}

	cycleLength := models.DefaultCycleLength
	if preceding, found := precedingRecord(start, existing); found {
		if gap := daysBetween(preceding.EndDate, start); gap > 0 {
			cycleLength = gap
		}
	}

	duration := daysBetween(start, end) + 1
	if duration < 1 {
		duration = 1
	}

	flow := strings.TrimSpace(input.FlowIntensity)
	if flow == "" {
		flow = models.FlowMedium
	}

	symptoms := input.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	return models.PeriodRecord{
		StartDate:     start,
		EndDate:       end,
		CycleLength:   cycleLength,
		Duration:      duration,
		FlowIntensity: flow,
		Symptoms:      symptoms,
	}, nil
}

func precedingRecord(start time.Time, existing []models.PeriodRecord) (models.PeriodRecord, bool) {
	var preceding models.PeriodRecord
	found := false
	for _, record := range existing {
		end := dateOnly(record.EndDate)
		if !end.Before(start) {
			continue
		}
		if !found || end.After(dateOnly(preceding.EndDate)) {
			preceding = record
			found = true
		}
	}
	return preceding, found
}
