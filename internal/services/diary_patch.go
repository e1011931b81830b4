package services

import (
	"fmt"
	"time"

	"github.com/nrenier/HealthTrackPro/internal/models"
	"github.com/nrenier/HealthTrackPro/internal/patch"
)

// BloodPresenceInput is the nested shape the diary form submits for
// blood observations; either flag may be omitted independently.
type BloodPresenceInput struct {
	InFeces patch.Field[bool] `json:"inFeces"`
	InUrine patch.Field[bool] `json:"inUrine"`
}

// EntryPatch is a partial update for one diary entry. Only fields whose
// keys appear in the payload are touched; an explicit null clears the
// corresponding optional field.
type EntryPatch struct {
	Mood  patch.Field[string] `json:"mood"`
	Flow  patch.Field[string] `json:"flow"`
	Notes patch.Field[string] `json:"notes"`

	PainSymptoms  patch.Field[[]models.PainSymptom] `json:"painSymptoms"`
	BloodPresence patch.Field[BloodPresenceInput]   `json:"bloodPresence"`

	PregnancyTest      patch.Field[string]            `json:"pregnancyTest"`
	PhysicalActivities patch.Field[[]string]          `json:"physicalActivities"`
	Medicines          patch.Field[[]models.Medicine] `json:"medicines"`
	Visits             patch.Field[[]models.Visit]    `json:"visits"`

	WaterIntake      patch.Field[int]     `json:"waterIntake"`
	Weight           patch.Field[float64] `json:"weight"`
	BasalTemperature patch.Field[float64] `json:"basalTemperature"`
}

// Validate rejects enum values outside their closed sets. Collections
// are not validated here; unknown elements are dropped during
// normalization instead.
func (p EntryPatch) Validate() error {
	if mood, ok := p.Mood.Get(); ok && !IsValidMood(mood) {
		return fmt.Errorf("%w: %q", ErrInvalidMood, mood)
	}
	if flow, ok := p.Flow.Get(); ok && !IsValidFlow(flow) {
		return fmt.Errorf("%w: %q", ErrInvalidFlow, flow)
	}
	if test, ok := p.PregnancyTest.Get(); ok && !IsValidPregnancyTest(test) {
		return fmt.Errorf("%w: %q", ErrInvalidPregnancyTest, test)
	}
	if p.PregnancyTest.IsNull() {
		return fmt.Errorf("%w: null", ErrInvalidPregnancyTest)
	}
	return nil
}

// Apply merges the patch into the entry. Unset fields keep their stored
// values, null fields clear optional columns, and every collection is
// normalized before it lands.
func (p EntryPatch) Apply(entry *models.DiaryEntry, now time.Time, location *time.Location) {
	applyOptionalString(p.Mood, &entry.Mood)
	applyOptionalString(p.Flow, &entry.Flow)
	if notes, ok := p.Notes.Get(); ok {
		trimmed := TrimNotes(notes)
		entry.Notes = &trimmed
	} else if p.Notes.IsNull() {
		entry.Notes = nil
	}

	if symptoms, ok := p.PainSymptoms.Get(); ok {
		entry.PainSymptoms = NormalizePainSymptoms(symptoms)
	} else if p.PainSymptoms.IsNull() {
		entry.PainSymptoms = []models.PainSymptom{}
	}

	if blood, ok := p.BloodPresence.Get(); ok {
		if inFeces, ok := blood.InFeces.Get(); ok {
			entry.BloodInFeces = inFeces
		}
		if inUrine, ok := blood.InUrine.Get(); ok {
			entry.BloodInUrine = inUrine
		}
	} else if p.BloodPresence.IsNull() {
		entry.BloodInFeces = false
		entry.BloodInUrine = false
	}

	if test, ok := p.PregnancyTest.Get(); ok {
		entry.PregnancyTest = test
	}

	if activities, ok := p.PhysicalActivities.Get(); ok {
		entry.PhysicalActivities = NormalizePhysicalActivities(activities)
	} else if p.PhysicalActivities.IsNull() {
		entry.PhysicalActivities = []string{}
	}

	if medicines, ok := p.Medicines.Get(); ok {
		entry.Medicines = NormalizeMedicines(medicines, now)
	} else if p.Medicines.IsNull() {
		entry.Medicines = []models.Medicine{}
	}

	if visits, ok := p.Visits.Get(); ok {
		entry.Visits = NormalizeVisits(visits, now, location)
	} else if p.Visits.IsNull() {
		entry.Visits = []models.Visit{}
	}

	if intake, ok := p.WaterIntake.Get(); ok {
		if intake < 0 {
			intake = 0
		}
		entry.WaterIntake = &intake
	} else if p.WaterIntake.IsNull() {
		entry.WaterIntake = nil
	}

	applyOptionalFloat(p.Weight, &entry.Weight)
	applyOptionalFloat(p.BasalTemperature, &entry.BasalTemperature)
}

func applyOptionalString(field patch.Field[string], target **string) {
	if value, ok := field.Get(); ok {
		*target = &value
	} else if field.IsNull() {
		*target = nil
	}
}

func applyOptionalFloat(field patch.Field[float64], target **float64) {
	if value, ok := field.Get(); ok {
		*target = &value
	} else if field.IsNull() {
		*target = nil
	}
}
