package db

import (
	"github.com/mariveldt/velle/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

// ListByUser returns the user's full period history, most recent start first.
func (repo *PeriodRepository) ListByUser(userID uint) ([]models.PeriodRecord, error) {
	records := make([]models.PeriodRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *PeriodRepository) Create(record *models.PeriodRecord) error {
	return repo.database.Create(record).Error
}

// DeleteByPublicID removes one record owned by the user; deleting a record
// that does not exist reports gorm.ErrRecordNotFound.
func (repo *PeriodRepository) DeleteByPublicID(userID uint, publicID string) error {
	result := repo.database.
		Where("user_id = ? AND public_id = ?", userID, publicID).
		Delete(&models.PeriodRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
