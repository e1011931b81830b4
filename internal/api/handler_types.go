package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/nrenier/HealthTrackPro/internal/db"
	"github.com/nrenier/HealthTrackPro/internal/services"
)

const (
	sessionCookieName = "endodiary_session"
	contextUserKey    = "current_user"
)

// RequestBodyLimit must sit well above MaxReportSize: an oversized
// report has to reach the upload handler and get a 400 from the size
// check, not a transport-level 413.
const RequestBodyLimit = 16 << 20

type Handler struct {
	location     *time.Location
	cookieSecure bool
	validate     *validator.Validate

	authService    *services.AuthService
	sessionService *services.SessionService
	diaryService   *services.DiaryService
	medicalService *services.MedicalService
	reportStore    *services.ReportStore
}

// NewHandler wires every service onto one dependency-injected handler;
// nothing request-scoped lives in package state.
func NewHandler(database *gorm.DB, reportDir string, location *time.Location, cookieSecure bool, sessionTTL time.Duration) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}

	reportStore, err := services.NewReportStore(reportDir)
	if err != nil {
		return nil, err
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		location:       location,
		cookieSecure:   cookieSecure,
		validate:       validator.New(),
		authService:    services.NewAuthService(repositories.Users),
		sessionService: services.NewSessionService(repositories.Sessions, sessionTTL),
		diaryService:   services.NewDiaryService(repositories.Diary, location),
		medicalService: services.NewMedicalService(repositories.MedicalInfo),
		reportStore:    reportStore,
	}, nil
}
