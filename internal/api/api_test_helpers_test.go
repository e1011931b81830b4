package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nrenier/HealthTrackPro/internal/db"
)

type testEnv struct {
	dbPath    string
	uploadDir string
}

func newTestApp(t *testing.T) (*fiber.App, testEnv) {
	t.Helper()

	env := testEnv{
		dbPath:    filepath.Join(t.TempDir(), "test.db"),
		uploadDir: filepath.Join(t.TempDir(), "uploads"),
	}
	return newTestAppWithEnv(t, env), env
}

// newTestAppWithEnv builds a fresh app over existing storage, so tests
// can simulate a process restart.
func newTestAppWithEnv(t *testing.T, env testEnv) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(env.dbPath)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler, err := NewHandler(database, env.uploadDir, time.UTC, false, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("create handler: %v", err)
	}

	app := fiber.New(fiber.Config{BodyLimit: RequestBodyLimit})
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(method string, path string, payload string) *http.Request {
	request := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// registerTestUser signs up a user through the public API and returns
// the session cookie established by registration.
func registerTestUser(t *testing.T, app *fiber.App, username string) *http.Cookie {
	t.Helper()

	payload := fmt.Sprintf(`{"username":%q,"email":%q,"password":"longenough"}`, username, username+"@example.com")
	response := performRequest(t, app, jsonRequest(http.MethodPost, "/api/register", payload))
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("register %q: status %d, body %s", username, response.StatusCode, body)
	}

	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected session cookie after registration")
	}
	return cookie
}

func authedJSONRequest(method string, path string, payload string, cookie *http.Cookie) *http.Request {
	request := jsonRequest(method, path, payload)
	request.AddCookie(cookie)
	return request
}

func multipartReportRequest(t *testing.T, fileName string, content []byte, cookie *http.Cookie) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("report", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/upload-report", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.AddCookie(cookie)
	return request
}
