package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nrenier/HealthTrackPro/internal/models"
)

const MaxNotesLength = 2000

var (
	ErrInvalidMood          = errors.New("invalid mood value")
	ErrInvalidFlow          = errors.New("invalid flow value")
	ErrInvalidPregnancyTest = errors.New("invalid pregnancy test value")
)

func IsValidMood(mood string) bool {
	switch mood {
	case models.MoodSad, models.MoodNeutral, models.MoodHappy:
		return true
	default:
		return false
	}
}

func IsValidFlow(flow string) bool {
	switch flow {
	case models.FlowNone, models.FlowLight, models.FlowMedium, models.FlowHeavy, models.FlowClots:
		return true
	default:
		return false
	}
}

func IsValidPregnancyTest(value string) bool {
	switch value {
	case models.PregnancyTestNone, models.PregnancyTestPositive, models.PregnancyTestNegative, models.PregnancyTestFaint:
		return true
	default:
		return false
	}
}

// NormalizePainSymptoms filters to the closed location set, clamps
// intensities into [0,10] and keeps one record per location (the last
// submitted value wins, in first-seen order).
func NormalizePainSymptoms(symptoms []models.PainSymptom) []models.PainSymptom {
	known := make(map[string]struct{}, len(models.PainLocations()))
	for _, location := range models.PainLocations() {
		known[location] = struct{}{}
	}

	order := make([]string, 0, len(symptoms))
	byLocation := make(map[string]int, len(symptoms))
	for _, symptom := range symptoms {
		if _, ok := known[symptom.Location]; !ok {
			continue
		}
		if _, seen := byLocation[symptom.Location]; !seen {
			order = append(order, symptom.Location)
		}
		byLocation[symptom.Location] = ClampPainIntensity(symptom.Intensity)
	}

	normalized := make([]models.PainSymptom, 0, len(order))
	for _, location := range order {
		normalized = append(normalized, models.PainSymptom{
			Location:  location,
			Intensity: byLocation[location],
		})
	}
	return normalized
}

func ClampPainIntensity(intensity int) int {
	if intensity < models.PainIntensityMin {
		return models.PainIntensityMin
	}
	if intensity > models.PainIntensityMax {
		return models.PainIntensityMax
	}
	return intensity
}

// NormalizePhysicalActivities filters to the closed tag set,
// deduplicates, and enforces that "none" is never stored alongside
// another tag: when both arrive, the real activities win.
func NormalizePhysicalActivities(activities []string) []string {
	known := make(map[string]struct{}, len(models.PhysicalActivityTags()))
	for _, tag := range models.PhysicalActivityTags() {
		known[tag] = struct{}{}
	}

	normalized := make([]string, 0, len(activities))
	seen := make(map[string]struct{}, len(activities))
	hasNone := false
	for _, tag := range activities {
		if _, ok := known[tag]; !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		if tag == models.ActivityNone {
			hasNone = true
			continue
		}
		normalized = append(normalized, tag)
	}

	if hasNone && len(normalized) == 0 {
		return []string{models.ActivityNone}
	}
	return normalized
}

// NormalizeMedicines drops nameless rows and assigns ids to new ones so
// the client can address individual rows on later edits.
func NormalizeMedicines(medicines []models.Medicine, now time.Time) []models.Medicine {
	normalized := make([]models.Medicine, 0, len(medicines))
	for index, medicine := range medicines {
		medicine.Name = strings.TrimSpace(medicine.Name)
		if medicine.Name == "" {
			continue
		}
		medicine.Dosage = strings.TrimSpace(medicine.Dosage)
		if medicine.ID == 0 {
			medicine.ID = now.UnixMilli() + int64(index)
		}
		normalized = append(normalized, medicine)
	}
	return normalized
}

// NormalizeVisits assigns ids to new visits and defaults a missing
// visit date to today, matching the tracker widget's behavior.
func NormalizeVisits(visits []models.Visit, now time.Time, location *time.Location) []models.Visit {
	normalized := make([]models.Visit, 0, len(visits))
	for index, visit := range visits {
		visit.Type = strings.TrimSpace(visit.Type)
		visit.Date = strings.TrimSpace(visit.Date)
		if visit.Date == "" {
			visit.Date = DateAtLocation(now, location).Format(time.DateOnly)
		}
		if visit.ID == 0 {
			visit.ID = now.UnixMilli() + int64(index)
		}
		normalized = append(normalized, visit)
	}
	return normalized
}

// TrimNotes caps notes at MaxNotesLength bytes, backing off to the
// previous rune boundary so a multi-byte character is never split.
func TrimNotes(value string) string {
	if len(value) <= MaxNotesLength {
		return value
	}
	cut := MaxNotesLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}
