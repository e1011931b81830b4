package services

import (
	"errors"
	"time"

	"github.com/nrenier/HealthTrackPro/internal/db"
	"github.com/nrenier/HealthTrackPro/internal/models"
	"github.com/nrenier/HealthTrackPro/internal/security"
)

var (
	ErrSessionInvalid      = errors.New("session is missing, expired, or revoked")
	ErrSessionCreateFailed = errors.New("failed to create session")
)

// SessionService issues and resolves durable login sessions. Sessions
// survive process restarts because they live in the database, not in
// process memory.
type SessionService struct {
	sessions *db.SessionRepository
	ttl      time.Duration
}

func NewSessionService(sessions *db.SessionRepository, ttl time.Duration) *SessionService {
	return &SessionService{sessions: sessions, ttl: ttl}
}

// Create issues a fresh opaque session id for the user.
func (service *SessionService) Create(userID uint, now time.Time) (models.Session, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return models.Session{}, ErrSessionCreateFailed
	}

	session := models.Session{
		ID:        token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(service.ttl),
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.Session{}, ErrSessionCreateFailed
	}
	return session, nil
}

// Resolve maps a session id back to its session. Expired sessions are
// reaped on the way through rather than by a background job, so stale
// rows disappear as a side effect of normal traffic.
func (service *SessionService) Resolve(sessionID string, now time.Time) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, ErrSessionInvalid
	}

	session, found, err := service.sessions.FindByID(sessionID)
	if err != nil || !found {
		return models.Session{}, ErrSessionInvalid
	}
	if session.Expired(now) {
		_ = service.sessions.DeleteExpired(now)
		return models.Session{}, ErrSessionInvalid
	}
	return session, nil
}

// Destroy revokes one session. Revoking an unknown id is not an error;
// logout is idempotent.
func (service *SessionService) Destroy(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return service.sessions.Delete(sessionID)
}

// DestroyAllForUser revokes every session the user holds, used when the
// account is deleted.
func (service *SessionService) DestroyAllForUser(userID uint) error {
	return service.sessions.DeleteByUser(userID)
}
