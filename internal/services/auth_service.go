package services

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nrenier/HealthTrackPro/internal/db"
	"github.com/nrenier/HealthTrackPro/internal/models"
	"github.com/nrenier/HealthTrackPro/internal/patch"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
)

var (
	ErrUsernameInvalid    = errors.New("username must be 3-32 characters: letters, digits, '_', '-', '.'")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailInvalid       = errors.New("email address is not valid")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 characters")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserSaveFailed     = errors.New("failed to save user")
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// AuthService owns registration, credential checks, and account
// lifecycle. Passwords are stored as bcrypt hashes only.
type AuthService struct {
	users *db.UserRepository
}

func NewAuthService(users *db.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// NormalizeEmail lowercases and trims, matching the store's uniqueness
// check so "A@b.c " and "a@b.c" count as the same address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterInput is a signup request before validation.
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (input RegisterInput) validate() error {
	if !usernamePattern.MatchString(strings.TrimSpace(input.Username)) {
		return ErrUsernameInvalid
	}
	if !emailPattern.MatchString(NormalizeEmail(input.Email)) {
		return ErrEmailInvalid
	}
	if len(input.Password) < MinPasswordLength {
		return ErrPasswordTooWeak
	}
	if len(input.Password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// Register creates an account with a unique username and email.
func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	if err := input.validate(); err != nil {
		return models.User{}, err
	}

	username := strings.TrimSpace(input.Username)
	email := NormalizeEmail(input.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrUserSaveFailed
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := service.users.Create(&user); err != nil {
		// Uniqueness lives in the DB indexes, not in a check before
		// the insert, so concurrent registrations cannot race. A
		// failed insert is classified by re-reading both keys.
		if taken, checkErr := service.users.ExistsByUsername(username); checkErr == nil && taken {
			return models.User{}, ErrUsernameTaken
		}
		if taken, checkErr := service.users.ExistsByNormalizedEmail(email); checkErr == nil && taken {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, ErrUserSaveFailed
	}
	return user, nil
}

// Authenticate verifies a username/password pair. The error never says
// which half was wrong.
func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) GetUser(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// ProfilePatch is a partial account update. Username and password are
// fixed; only display name and email can change.
type ProfilePatch struct {
	DisplayName patch.Field[string] `json:"displayName"`
	Email       patch.Field[string] `json:"email"`
}

// UpdateProfile applies a partial account update and returns the
// refreshed account.
func (service *AuthService) UpdateProfile(userID uint, input ProfilePatch) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	updates := map[string]any{}
	if displayName, ok := input.DisplayName.Get(); ok {
		updates["display_name"] = strings.TrimSpace(displayName)
	}
	if email, ok := input.Email.Get(); ok {
		normalized := NormalizeEmail(email)
		if !emailPattern.MatchString(normalized) {
			return models.User{}, ErrEmailInvalid
		}
		if normalized != NormalizeEmail(user.Email) {
			if taken, err := service.users.ExistsByNormalizedEmail(normalized); err != nil {
				return models.User{}, ErrUserSaveFailed
			} else if taken {
				return models.User{}, ErrEmailTaken
			}
			updates["email"] = normalized
		}
	}

	if err := service.users.UpdateProfile(userID, updates); err != nil {
		return models.User{}, ErrUserSaveFailed
	}

	user, err = service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// DeleteAccount removes the account along with its diary entries,
// medical background, and sessions.
func (service *AuthService) DeleteAccount(userID uint) error {
	if _, err := service.users.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		return ErrUserSaveFailed
	}
	return nil
}
