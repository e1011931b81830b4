package services

import (
	"path/filepath"
	"testing"

	"github.com/nrenier/HealthTrackPro/internal/db"
	"github.com/nrenier/HealthTrackPro/internal/models"
)

func newTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db.NewRepositories(database)
}

func createTestUser(t *testing.T, repos *db.Repositories, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		DisplayName:  username,
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}
