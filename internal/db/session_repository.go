package db

import (
	"time"

	"github.com/nrenier/HealthTrackPro/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.Session) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) FindByID(sessionID string) (models.Session, bool, error) {
	session := models.Session{}
	result := repo.database.Where("id = ?", sessionID).Limit(1).Find(&session)
	if result.Error != nil {
		return models.Session{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Session{}, false, nil
	}
	return session, true, nil
}

func (repo *SessionRepository) Delete(sessionID string) error {
	return repo.database.Where("id = ?", sessionID).Delete(&models.Session{}).Error
}

func (repo *SessionRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}

// DeleteExpired reaps sessions whose expiry has passed. Called lazily
// from the resolve path; there is no background job.
func (repo *SessionRepository) DeleteExpired(now time.Time) error {
	return repo.database.Where("expires_at <= ?", now).Delete(&models.Session{}).Error
}
