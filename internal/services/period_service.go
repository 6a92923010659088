package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mariveldt/velle/internal/models"
)

// PeriodRecordStore is the slice of the record store the cycle engine needs.
type PeriodRecordStore interface {
	ListByUser(userID uint) ([]models.PeriodRecord, error)
	Create(record *models.PeriodRecord) error
	DeleteByPublicID(userID uint, publicID string) error
}

type PeriodService struct {
	records PeriodRecordStore
}

func NewPeriodService(records PeriodRecordStore) *PeriodService {
	return &PeriodService{records: records}
}

// Summary recomputes the cycle projection from the current snapshot. A store
// failure is propagated as-is; no partial summary is ever returned.
func (service *PeriodService) Summary(userID uint, now time.Time) (CycleSummary, error) {
	records, err := service.records.ListByUser(userID)
	if err != nil {
		return CycleSummary{}, fmt.Errorf("list period records: %w", err)
	}
	return BuildCycleSummary(records, now), nil
}

// Record validates and stores one new period. The stored record carries the
// cycle length and duration exactly as the validator computed them, so
// feeding it back through Summary reproduces the same values.
func (service *PeriodService) Record(userID uint, input PeriodInput) (models.PeriodRecord, error) {
	existing, err := service.records.ListByUser(userID)
	if err != nil {
		return models.PeriodRecord{}, fmt.Errorf("list period records: %w", err)
	}

	record, err := PreparePeriodRecord(input, existing)
	if err != nil {
		return models.PeriodRecord{}, err
	}

	record.UserID = userID
	record.PublicID = uuid.NewString()
	if err := service.records.Create(&record); err != nil {
		return models.PeriodRecord{}, fmt.Errorf("store period record: %w", err)
	}
	return record, nil
}

func (service *PeriodService) Delete(userID uint, publicID string) error {
	return service.records.DeleteByPublicID(userID, publicID)
}
