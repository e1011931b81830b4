package models

import "time"

const (
	MoodSad     = "sad"
	MoodNeutral = "neutral"
	MoodHappy   = "happy"
)

const (
	FlowNone   = "none"
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
	FlowClots  = "clots"
)

const (
	PregnancyTestNone     = "none"
	PregnancyTestPositive = "positive"
	PregnancyTestNegative = "negative"
	PregnancyTestFaint    = "faint"
)

const (
	PainIntensityMin = 0
	PainIntensityMax = 10
)

// ActivityNone is mutually exclusive with every other activity tag.
const ActivityNone = "none"

// PainLocations is the closed set of pain score locations. Anything
// outside this set is silently dropped on write.
func PainLocations() []string {
	return []string{
		"abdominal",
		"pelvic",
		"dysmenorrhea",
		"defecation",
		"urination",
		"sexualIntercourse",
		"postSexual",
	}
}

// PhysicalActivityTags is the closed set of activity tags the trackers
// submit.
func PhysicalActivityTags() []string {
	return []string{
		ActivityNone,
		"yoga",
		"gym",
		"aerobics",
		"swimming",
		"running",
		"cycling",
		"walking",
		"team-sport",
	}
}

type PainSymptom struct {
	Location  string `json:"location"`
	Intensity int    `json:"intensity"`
}

type Medicine struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

type Visit struct {
	ID             int64  `json:"id"`
	Type           string `json:"type"`
	Date           string `json:"date"`
	ReportFileName string `json:"reportFileName,omitempty"`
}

// DiaryEntry is one user's recorded health data for a single calendar
// day. At most one row exists per (user, date); the unique index makes
// concurrent duplicate creates fail at the store instead of racing.
type DiaryEntry struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;uniqueIndex:uidx_user_date" json:"userId"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date" json:"date"`

	Mood  *string `json:"mood"`
	Flow  *string `json:"flow"`
	Notes *string `json:"notes"`

	PainSymptoms []PainSymptom `gorm:"serializer:json" json:"painSymptoms"`

	BloodInFeces bool `gorm:"not null;default:false" json:"bloodInFeces"`
	BloodInUrine bool `gorm:"not null;default:false" json:"bloodInUrine"`

	PregnancyTest      string     `gorm:"not null;default:none" json:"pregnancyTest"`
	PhysicalActivities []string   `gorm:"serializer:json" json:"physicalActivities"`
	Medicines          []Medicine `gorm:"serializer:json" json:"medicines"`
	Visits             []Visit    `gorm:"serializer:json" json:"visits"`

	WaterIntake      *int     `json:"waterIntake"`
	Weight           *float64 `json:"weight"`
	BasalTemperature *float64 `json:"basalTemperature"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewDiaryEntry returns an entry for the given day with every nested
// collection initialized, so a freshly created day serializes as empty
// arrays rather than nulls.
func NewDiaryEntry(userID uint, day time.Time) DiaryEntry {
	return DiaryEntry{
		UserID:             userID,
		Date:               day,
		PainSymptoms:       []PainSymptom{},
		PregnancyTest:      PregnancyTestNone,
		PhysicalActivities: []string{},
		Medicines:          []Medicine{},
		Visits:             []Visit{},
	}
}
