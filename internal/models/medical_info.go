package models

import "time"

const (
	EndometriomaUnilateral = "unilateral"
	EndometriomaBilateral  = "bilateral"
)

// HormonalTherapies is the closed catalog of therapy choices the
// medical background form offers.
func HormonalTherapies() []string {
	return []string{
		"estroprogestinic_pill",
		"estroprogestinic_ring",
		"dienogest",
		"desogestrel",
		"etonogestrel",
		"drospirenone",
		"norethisterone_acetate",
		"levonorgestrel_iud",
		"triptoreline",
		"leuprorelin",
		"tibolone",
		"other",
	}
}

// MedicalInfo is the static clinical background, distinct from daily
// diary entries. At most one row exists per user.
type MedicalInfo struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"userId"`

	BirthDate       *string `json:"birthDate"`
	MenarcheAge     *int    `json:"menarcheAge"`
	Smoking         bool    `gorm:"not null;default:false" json:"smoking"`
	HormonalTherapy *string `json:"hormonalTherapy"`

	EndometriosisSurgery bool `gorm:"not null;default:false" json:"endometriosisSurgery"`
	Appendectomy         bool `gorm:"not null;default:false" json:"appendectomy"`
	Infertility          bool `gorm:"not null;default:false" json:"infertility"`

	EndometriomaPreOpEcography bool     `gorm:"not null;default:false" json:"endometriomaPreOpEcography"`
	EndometriomaLocation       string   `gorm:"not null;default:unilateral" json:"endometriomaLocation"`
	EndometriomaMaxDiameter    *float64 `json:"endometriomaMaxDiameter"`
	CA125Value                 *float64 `json:"ca125Value"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the singular table name from the reference schema,
// overriding GORM's pluralization.
func (MedicalInfo) TableName() string {
	return "medical_info"
}

// NewMedicalInfo returns the defaults the form starts from.
func NewMedicalInfo(userID uint) MedicalInfo {
	return MedicalInfo{
		UserID:               userID,
		EndometriomaLocation: EndometriomaUnilateral,
	}
}
