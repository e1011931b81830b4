package db

import (
	"time"

	"github.com/nrenier/HealthTrackPro/internal/models"
	"gorm.io/gorm"
)

type DiaryRepository struct {
	database *gorm.DB
}

func NewDiaryRepository(database *gorm.DB) *DiaryRepository {
	return &DiaryRepository{database: database}
}

func (repo *DiaryRepository) ListByUser(userID uint) ([]models.DiaryEntry, error) {
	entries := make([]models.DiaryEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserRange returns entries within [fromStart, toEnd), newest
// first. Either bound may be nil.
func (repo *DiaryRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.DiaryEntry, error) {
	query := repo.database.Model(&models.DiaryEntry{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	entries := make([]models.DiaryEntry, 0)
	if err := query.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DiaryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DiaryEntry, bool, error) {
	entry := models.DiaryEntry{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DiaryEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DiaryEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *DiaryRepository) Create(entry *models.DiaryEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *DiaryRepository) Save(entry *models.DiaryEntry) error {
	return repo.database.Save(entry).Error
}

// DeleteByUserAndDayRange reports whether a row was actually removed,
// so callers can answer 404 for an already-empty date.
func (repo *DiaryRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (bool, error) {
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.DiaryEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListMeasurements loads only the measurement columns for the history
// endpoint, newest first.
func (repo *DiaryRepository) ListMeasurements(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.DiaryEntry, error) {
	query := repo.database.Model(&models.DiaryEntry{}).
		Select("date", "water_intake", "weight", "basal_temperature").
		Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	entries := make([]models.DiaryEntry, 0)
	if err := query.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
