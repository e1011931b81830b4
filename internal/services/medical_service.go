package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nrenier/HealthTrackPro/internal/db"
	"github.com/nrenier/HealthTrackPro/internal/models"
	"github.com/nrenier/HealthTrackPro/internal/patch"
)

var (
	ErrMedicalInfoNotFound   = errors.New("medical info not found")
	ErrMedicalInfoExists     = errors.New("medical info already exists")
	ErrMedicalInfoSaveFailed = errors.New("failed to save medical info")
	ErrInvalidBirthDate      = errors.New("birth date must be formatted as YYYY-MM-DD")
	ErrInvalidMenarcheAge    = errors.New("menarche age is out of range")
	ErrInvalidTherapy        = errors.New("unknown hormonal therapy")
	ErrInvalidLocation       = errors.New("endometrioma location must be unilateral or bilateral")
)

// MedicalService owns the one-record-per-user clinical background.
type MedicalService struct {
	medicalInfo *db.MedicalInfoRepository
}

func NewMedicalService(medicalInfo *db.MedicalInfoRepository) *MedicalService {
	return &MedicalService{medicalInfo: medicalInfo}
}

// MedicalInfoPatch is a partial update of the clinical background.
type MedicalInfoPatch struct {
	BirthDate       patch.Field[string] `json:"birthDate"`
	MenarcheAge     patch.Field[int]    `json:"menarcheAge"`
	Smoking         patch.Field[bool]   `json:"smoking"`
	HormonalTherapy patch.Field[string] `json:"hormonalTherapy"`

	EndometriosisSurgery patch.Field[bool] `json:"endometriosisSurgery"`
	Appendectomy         patch.Field[bool] `json:"appendectomy"`
	Infertility          patch.Field[bool] `json:"infertility"`

	EndometriomaPreOpEcography patch.Field[bool]    `json:"endometriomaPreOpEcography"`
	EndometriomaLocation       patch.Field[string]  `json:"endometriomaLocation"`
	EndometriomaMaxDiameter    patch.Field[float64] `json:"endometriomaMaxDiameter"`
	CA125Value                 patch.Field[float64] `json:"ca125Value"`
}

func (p MedicalInfoPatch) Validate() error {
	if birthDate, ok := p.BirthDate.Get(); ok {
		if _, err := time.Parse(time.DateOnly, birthDate); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidBirthDate, birthDate)
		}
	}
	if age, ok := p.MenarcheAge.Get(); ok && (age < 5 || age > 25) {
		return fmt.Errorf("%w: %d", ErrInvalidMenarcheAge, age)
	}
	if therapy, ok := p.HormonalTherapy.Get(); ok && !isKnownTherapy(therapy) {
		return fmt.Errorf("%w: %q", ErrInvalidTherapy, therapy)
	}
	if location, ok := p.EndometriomaLocation.Get(); ok {
		if location != models.EndometriomaUnilateral && location != models.EndometriomaBilateral {
			return fmt.Errorf("%w: %q", ErrInvalidLocation, location)
		}
	}
	return nil
}

func isKnownTherapy(therapy string) bool {
	for _, known := range models.HormonalTherapies() {
		if therapy == known {
			return true
		}
	}
	return false
}

func (p MedicalInfoPatch) apply(info *models.MedicalInfo) {
	applyOptionalString(p.BirthDate, &info.BirthDate)
	if age, ok := p.MenarcheAge.Get(); ok {
		info.MenarcheAge = &age
	} else if p.MenarcheAge.IsNull() {
		info.MenarcheAge = nil
	}
	if smoking, ok := p.Smoking.Get(); ok {
		info.Smoking = smoking
	}
	applyOptionalString(p.HormonalTherapy, &info.HormonalTherapy)

	if value, ok := p.EndometriosisSurgery.Get(); ok {
		info.EndometriosisSurgery = value
	}
	if value, ok := p.Appendectomy.Get(); ok {
		info.Appendectomy = value
	}
	if value, ok := p.Infertility.Get(); ok {
		info.Infertility = value
	}

	if value, ok := p.EndometriomaPreOpEcography.Get(); ok {
		info.EndometriomaPreOpEcography = value
	}
	if location, ok := p.EndometriomaLocation.Get(); ok {
		info.EndometriomaLocation = location
	}
	applyOptionalFloat(p.EndometriomaMaxDiameter, &info.EndometriomaMaxDiameter)
	applyOptionalFloat(p.CA125Value, &info.CA125Value)
}

func (service *MedicalService) Get(userID uint) (models.MedicalInfo, error) {
	info, found, err := service.medicalInfo.FindByUser(userID)
	if err != nil {
		return models.MedicalInfo{}, ErrMedicalInfoSaveFailed
	}
	if !found {
		return models.MedicalInfo{}, ErrMedicalInfoNotFound
	}
	return info, nil
}

// Create stores the user's clinical background. When one already exists
// the stored record comes back alongside ErrMedicalInfoExists.
func (service *MedicalService) Create(userID uint, input MedicalInfoPatch) (models.MedicalInfo, error) {
	if err := input.Validate(); err != nil {
		return models.MedicalInfo{}, err
	}

	if existing, found, err := service.medicalInfo.FindByUser(userID); err != nil {
		return models.MedicalInfo{}, ErrMedicalInfoSaveFailed
	} else if found {
		return existing, ErrMedicalInfoExists
	}

	info := models.NewMedicalInfo(userID)
	input.apply(&info)

	if err := service.medicalInfo.Create(&info); err != nil {
		if existing, found, findErr := service.medicalInfo.FindByUser(userID); findErr == nil && found {
			return existing, ErrMedicalInfoExists
		}
		return models.MedicalInfo{}, ErrMedicalInfoSaveFailed
	}
	return info, nil
}

// Update merges a partial payload into the stored record.
func (service *MedicalService) Update(userID uint, input MedicalInfoPatch) (models.MedicalInfo, error) {
	if err := input.Validate(); err != nil {
		return models.MedicalInfo{}, err
	}

	info, err := service.Get(userID)
	if err != nil {
		return models.MedicalInfo{}, err
	}

	input.apply(&info)
	if err := service.medicalInfo.Save(&info); err != nil {
		return models.MedicalInfo{}, ErrMedicalInfoSaveFailed
	}
	return info, nil
}
