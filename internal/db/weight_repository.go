package db

import (
	"time"

	"github.com/mariveldt/velle/internal/models"
	"gorm.io/gorm"
)

type WeightRepository struct {
	database *gorm.DB
}

func NewWeightRepository(database *gorm.DB) *WeightRepository {
	return &WeightRepository{database: database}
}

func (repo *WeightRepository) ListByUser(userID uint) ([]models.WeightRecord, error) {
	records := make([]models.WeightRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *WeightRepository) FindLatestByUser(userID uint) (models.WeightRecord, bool, error) {
	var record models.WeightRecord
	result := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.WeightRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightRecord{}, false, nil
	}
	return record, true, nil
}

// Upsert replaces the weight for a date the user already logged instead of
// creating a duplicate row.
func (repo *WeightRepository) Upsert(userID uint, date time.Time, weightKg float64) (models.WeightRecord, error) {
	var existing models.WeightRecord
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return models.WeightRecord{}, result.Error
	}

	if result.RowsAffected > 0 {
		existing.WeightKg = weightKg
		if err := repo.database.Save(&existing).Error; err != nil {
			return models.WeightRecord{}, err
		}
		return existing, nil
	}

	record := models.WeightRecord{UserID: userID, Date: date, WeightKg: weightKg}
	if err := repo.database.Create(&record).Error; err != nil {
		return models.WeightRecord{}, err
	}
	return record, nil
}
