package services

import (
	"errors"
	"time"

	"github.com/nrenier/HealthTrackPro/internal/db"
	"github.com/nrenier/HealthTrackPro/internal/models"
)

var (
	ErrEntryNotFound   = errors.New("diary entry not found")
	ErrEntryExists     = errors.New("diary entry already exists for this date")
	ErrEntryLoadFailed = errors.New("failed to load diary entries")
	ErrEntrySaveFailed = errors.New("failed to save diary entry")
)

// DiaryService owns the one-entry-per-day invariant. Dates are resolved
// to calendar days in the service's location before touching the store.
type DiaryService struct {
	diary    *db.DiaryRepository
	location *time.Location
}

func NewDiaryService(diary *db.DiaryRepository, location *time.Location) *DiaryService {
	if location == nil {
		location = time.UTC
	}
	return &DiaryService{diary: diary, location: location}
}

func (service *DiaryService) Location() *time.Location {
	return service.location
}

func (service *DiaryService) List(userID uint) ([]models.DiaryEntry, error) {
	entries, err := service.diary.ListByUser(userID)
	if err != nil {
		return nil, ErrEntryLoadFailed
	}
	return entries, nil
}

// ListRange returns entries covering [from, to] as inclusive calendar
// days. Either bound may be the zero time to leave that side open.
func (service *DiaryService) ListRange(userID uint, from time.Time, to time.Time) ([]models.DiaryEntry, error) {
	var fromStart, toEnd *time.Time
	if !from.IsZero() {
		start := DateAtLocation(from, service.location)
		fromStart = &start
	}
	if !to.IsZero() {
		_, end := DayRange(to, service.location)
		toEnd = &end
	}

	entries, err := service.diary.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, ErrEntryLoadFailed
	}
	return entries, nil
}

func (service *DiaryService) Get(userID uint, day time.Time) (models.DiaryEntry, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.diary.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DiaryEntry{}, ErrEntryLoadFailed
	}
	if !found {
		return models.DiaryEntry{}, ErrEntryNotFound
	}
	return entry, nil
}

// Create inserts a new entry for the given day. When an entry already
// exists the stored one comes back alongside ErrEntryExists, so the
// handler can return it in the conflict body. The unique (user, date)
// index closes the race between concurrent creates: the loser's insert
// fails and the refetch finds the winner's row.
func (service *DiaryService) Create(userID uint, day time.Time, input EntryPatch, now time.Time) (models.DiaryEntry, error) {
	if err := input.Validate(); err != nil {
		return models.DiaryEntry{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	if existing, found, err := service.diary.FindByUserAndDayRange(userID, dayStart, dayEnd); err != nil {
		return models.DiaryEntry{}, ErrEntryLoadFailed
	} else if found {
		return existing, ErrEntryExists
	}

	entry := models.NewDiaryEntry(userID, dayStart)
	input.Apply(&entry, now, service.location)

	if err := service.diary.Create(&entry); err != nil {
		if existing, found, findErr := service.diary.FindByUserAndDayRange(userID, dayStart, dayEnd); findErr == nil && found {
			return existing, ErrEntryExists
		}
		return models.DiaryEntry{}, ErrEntrySaveFailed
	}
	return entry, nil
}

// Update merges a partial payload into the stored entry for the day.
// Fields absent from the payload keep their stored values.
func (service *DiaryService) Update(userID uint, day time.Time, input EntryPatch, now time.Time) (models.DiaryEntry, error) {
	if err := input.Validate(); err != nil {
		return models.DiaryEntry{}, err
	}

	entry, err := service.Get(userID, day)
	if err != nil {
		return models.DiaryEntry{}, err
	}

	input.Apply(&entry, now, service.location)
	if err := service.diary.Save(&entry); err != nil {
		return models.DiaryEntry{}, ErrEntrySaveFailed
	}
	return entry, nil
}

func (service *DiaryService) Delete(userID uint, day time.Time) error {
	dayStart, dayEnd := DayRange(day, service.location)
	deleted, err := service.diary.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return ErrEntrySaveFailed
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

// MeasurementPoint is one day's body measurements for charting.
type MeasurementPoint struct {
	Date             string   `json:"date"`
	WaterIntake      *int     `json:"waterIntake"`
	Weight           *float64 `json:"weight"`
	BasalTemperature *float64 `json:"basalTemperature"`
}

// MeasurementHistory returns the days that recorded at least one
// measurement, newest first, optionally bounded to [from, to].
func (service *DiaryService) MeasurementHistory(userID uint, from time.Time, to time.Time) ([]MeasurementPoint, error) {
	var fromStart, toEnd *time.Time
	if !from.IsZero() {
		start := DateAtLocation(from, service.location)
		fromStart = &start
	}
	if !to.IsZero() {
		_, end := DayRange(to, service.location)
		toEnd = &end
	}

	entries, err := service.diary.ListMeasurements(userID, fromStart, toEnd)
	if err != nil {
		return nil, ErrEntryLoadFailed
	}

	points := make([]MeasurementPoint, 0, len(entries))
	for _, entry := range entries {
		if entry.WaterIntake == nil && entry.Weight == nil && entry.BasalTemperature == nil {
			continue
		}
		points = append(points, MeasurementPoint{
			Date:             entry.Date.In(service.location).Format(time.DateOnly),
			WaterIntake:      entry.WaterIntake,
			Weight:           entry.Weight,
			BasalTemperature: entry.BasalTemperature,
		})
	}
	return points, nil
}
