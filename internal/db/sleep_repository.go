package db

import (
	"time"

	"github.com/mariveldt/velle/internal/models"
	"gorm.io/gorm"
)

type SleepRepository struct {
	database *gorm.DB
}

func NewSleepRepository(database *gorm.DB) *SleepRepository {
	return &SleepRepository{database: database}
}

func (repo *SleepRepository) ListByUser(userID uint) ([]models.SleepRecord, error) {
	records := make([]models.SleepRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SleepRepository) ExistsByUserAndDate(userID uint, date time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.SleepRecord{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *SleepRepository) Create(record *models.SleepRecord) error {
	return repo.database.Create(record).Error
}

func (repo *SleepRepository) DeleteByID(userID uint, recordID uint) error {
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, recordID).
		Delete(&models.SleepRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
