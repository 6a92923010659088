package services

import (
	"testing"

	"github.com/mariveldt/velle/internal/models"
)

func TestBuildCalendarAnnotationsMarksPeriodDays(t *testing.T) {
	t.Parallel()

	annotations := BuildCalendarAnnotations([]models.PeriodRecord{
		makeRecord("2024-01-01", "2024-01-05", 28),
	})

	past := filterAnnotations(annotations, AnnotationPast)
	if len(past) != 5 {
		t.Fatalf("expected 5 past days, got %d", len(past))
	}
	if past[0].Date.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("unexpected first past day: %s", past[0].Date.Format("2006-01-02"))
	}
	if past[len(past)-1].Date.Format("2006-01-02") != "2024-01-05" {
		t.Fatalf("unexpected last past day: %s", past[len(past)-1].Date.Format("2006-01-02"))
	}
}

func TestBuildCalendarAnnotationsOvulationWindow(t *testing.T) {
	t.Parallel()

	annotations := BuildCalendarAnnotations([]models.PeriodRecord{
		makeRecord("2024-01-01", "2024-01-05", 28),
	})

	ovulation := filterAnnotations(annotations, AnnotationOvulation)
	if len(ovulation) != 7 {
		t.Fatalf("expected 7 ovulation days, got %d", len(ovulation))
	}
	if ovulation[0].Date.Format("2006-01-02") != "2024-01-10" {
		t.Fatalf("expected window to open on 2024-01-10, got %s", ovulation[0].Date.Format("2006-01-02"))
	}
	if ovulation[6].Date.Format("2006-01-02") != "2024-01-16" {
		t.Fatalf("expected window to close on 2024-01-16, got %s", ovulation[6].Date.Format("2006-01-02"))
	}
}

func TestBuildCalendarAnnotationsUsesEachRecordsOwnCycleLength(t *testing.T) {
	t.Parallel()

	annotations := BuildCalendarAnnotations([]models.PeriodRecord{
		makeRecord("2024-01-01", "2024-01-05", 20),
	})

	// floor(20/2) - 5 = 5 days after the start.
	ovulation := filterAnnotations(annotations, AnnotationOvulation)
	if ovulation[0].Date.Format("2006-01-02") != "2024-01-06" {
		t.Fatalf("expected window anchored to the record's cycle length, got %s", ovulation[0].Date.Format("2006-01-02"))
	}
}

func TestBuildCalendarAnnotationsKeepsOverlappingWindows(t *testing.T) {
	t.Parallel()

	// Windows land on Jan 10-16 and Jan 13-19 respectively.
	annotations := BuildCalendarAnnotations([]models.PeriodRecord{
		makeRecord("2024-01-01", "2024-01-05", 28),
		makeRecord("2024-01-08", "2024-01-12", 20),
	})

	ovulation := filterAnnotations(annotations, AnnotationOvulation)
	if len(ovulation) != 14 {
		t.Fatalf("expected both 7-day windows emitted without merging, got %d days", len(ovulation))
	}

	seen := make(map[string]int)
	for _, annotation := range ovulation {
		seen[annotation.Date.Format("2006-01-02")]++
	}
	if seen["2024-01-13"] != 2 {
		t.Fatalf("expected 2024-01-13 tagged by both windows, got %d", seen["2024-01-13"])
	}
}

func filterAnnotations(annotations []CalendarAnnotation, kind string) []CalendarAnnotation {
	filtered := make([]CalendarAnnotation, 0, len(annotations))
	for _, annotation := range annotations {
		if annotation.Kind == kind {
			filtered = append(filtered, annotation)
		}
	}
	return filtered
}
