package services

import (
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/nrenier/HealthTrackPro/internal/models"
)

func TestNormalizePainSymptoms(t *testing.T) {
	cases := []struct {
		name  string
		input []models.PainSymptom
		want  []models.PainSymptom
	}{
		{
			name:  "empty stays empty",
			input: []models.PainSymptom{},
			want:  []models.PainSymptom{},
		},
		{
			name: "unknown location dropped",
			input: []models.PainSymptom{
				{Location: "pelvic", Intensity: 4},
				{Location: "elbow", Intensity: 9},
			},
			want: []models.PainSymptom{{Location: "pelvic", Intensity: 4}},
		},
		{
			name: "intensity clamped into range",
			input: []models.PainSymptom{
				{Location: "abdominal", Intensity: 15},
				{Location: "urination", Intensity: -3},
			},
			want: []models.PainSymptom{
				{Location: "abdominal", Intensity: 10},
				{Location: "urination", Intensity: 0},
			},
		},
		{
			name: "duplicate location keeps last value in first-seen order",
			input: []models.PainSymptom{
				{Location: "pelvic", Intensity: 2},
				{Location: "dysmenorrhea", Intensity: 5},
				{Location: "pelvic", Intensity: 7},
			},
			want: []models.PainSymptom{
				{Location: "pelvic", Intensity: 7},
				{Location: "dysmenorrhea", Intensity: 5},
			},
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got := NormalizePainSymptoms(testCase.input)
			if !reflect.DeepEqual(got, testCase.want) {
				t.Fatalf("got %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestNormalizePhysicalActivities(t *testing.T) {
	cases := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "none alone survives",
			input: []string{"none"},
			want:  []string{"none"},
		},
		{
			name:  "none dropped when real activities present",
			input: []string{"none", "yoga", "running"},
			want:  []string{"yoga", "running"},
		},
		{
			name:  "unknown tags dropped",
			input: []string{"parkour", "swimming"},
			want:  []string{"swimming"},
		},
		{
			name:  "duplicates collapse",
			input: []string{"gym", "gym", "walking"},
			want:  []string{"gym", "walking"},
		},
		{
			name:  "only unknown tags leaves empty list",
			input: []string{"parkour"},
			want:  []string{},
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got := NormalizePhysicalActivities(testCase.input)
			if !reflect.DeepEqual(got, testCase.want) {
				t.Fatalf("got %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestNormalizeMedicines(t *testing.T) {
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)

	medicines := NormalizeMedicines([]models.Medicine{
		{Name: "  Ibuprofen ", Dosage: " 400mg "},
		{Name: "   "},
		{ID: 7, Name: "Dienogest", Dosage: "2mg"},
	}, now)

	if len(medicines) != 2 {
		t.Fatalf("expected 2 medicines, got %d", len(medicines))
	}
	if medicines[0].Name != "Ibuprofen" || medicines[0].Dosage != "400mg" {
		t.Fatalf("unexpected first medicine: %+v", medicines[0])
	}
	if medicines[0].ID == 0 {
		t.Fatal("expected new medicine to receive an id")
	}
	if medicines[1].ID != 7 {
		t.Fatalf("expected existing id preserved, got %d", medicines[1].ID)
	}
}

func TestNormalizeVisitsDefaultsDate(t *testing.T) {
	now := time.Date(2026, time.April, 10, 23, 30, 0, 0, time.UTC)

	visits := NormalizeVisits([]models.Visit{
		{Type: " gynecologist "},
		{ID: 3, Type: "ultrasound", Date: "2026-03-02"},
	}, now, time.UTC)

	if len(visits) != 2 {
		t.Fatalf("expected 2 visits, got %d", len(visits))
	}
	if visits[0].Date != "2026-04-10" {
		t.Fatalf("expected missing date defaulted to today, got %q", visits[0].Date)
	}
	if visits[0].ID == 0 {
		t.Fatal("expected new visit to receive an id")
	}
	if visits[1].Date != "2026-03-02" {
		t.Fatalf("expected provided date preserved, got %q", visits[1].Date)
	}
}

func TestTrimNotesKeepsRunesWhole(t *testing.T) {
	short := "slept well"
	if got := TrimNotes(short); got != short {
		t.Fatalf("short notes must pass through, got %q", got)
	}

	// A two-byte rune straddling the byte cap must be dropped whole,
	// never split into an invalid tail byte.
	straddling := strings.Repeat("a", MaxNotesLength-1) + "é"
	got := TrimNotes(straddling)
	if len(got) > MaxNotesLength {
		t.Fatalf("expected at most %d bytes, got %d", MaxNotesLength, len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatal("trimmed notes must stay valid UTF-8")
	}
	if got != strings.Repeat("a", MaxNotesLength-1) {
		t.Fatalf("expected the straddling rune dropped whole, got %d bytes", len(got))
	}

	multibyte := strings.Repeat("после", MaxNotesLength)
	got = TrimNotes(multibyte)
	if len(got) > MaxNotesLength {
		t.Fatalf("expected at most %d bytes, got %d", MaxNotesLength, len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatal("trimmed multi-byte notes must stay valid UTF-8")
	}
}

func TestEnumValidators(t *testing.T) {
	if !IsValidMood("happy") || IsValidMood("ecstatic") {
		t.Fatal("mood validation mismatch")
	}
	if !IsValidFlow("clots") || IsValidFlow("torrential") {
		t.Fatal("flow validation mismatch")
	}
	if !IsValidPregnancyTest("faint") || IsValidPregnancyTest("maybe") {
		t.Fatal("pregnancy test validation mismatch")
	}
}
