package db

import (
	"github.com/nrenier/HealthTrackPro/internal/models"
	"gorm.io/gorm"
)

type MedicalInfoRepository struct {
	database *gorm.DB
}

func NewMedicalInfoRepository(database *gorm.DB) *MedicalInfoRepository {
	return &MedicalInfoRepository{database: database}
}

func (repo *MedicalInfoRepository) FindByUser(userID uint) (models.MedicalInfo, bool, error) {
	info := models.MedicalInfo{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&info)
	if result.Error != nil {
		return models.MedicalInfo{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MedicalInfo{}, false, nil
	}
	return info, true, nil
}

func (repo *MedicalInfoRepository) Create(info *models.MedicalInfo) error {
	return repo.database.Create(info).Error
}

func (repo *MedicalInfoRepository) Save(info *models.MedicalInfo) error {
	return repo.database.Save(info).Error
}
