package api

import (
	"net/http"
	"testing"
)

func TestMedicalInfoLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodGet, "/api/medical-info", "", cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 before creation, got %d", response.StatusCode)
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodPut, "/api/medical-info",
		`{"smoking":true}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 updating before creation, got %d", response.StatusCode)
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/medical-info",
		`{"birthDate":"1992-04-15","menarcheAge":12,"hormonalTherapy":"dienogest"}`, cookie))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 from creation, got %d", response.StatusCode)
	}
	info := map[string]any{}
	decodeBody(t, response, &info)
	if info["endometriomaLocation"] != "unilateral" {
		t.Fatalf("expected default location, got %v", info["endometriomaLocation"])
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodPut, "/api/medical-info",
		`{"endometriomaLocation":"bilateral"}`, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from update, got %d", response.StatusCode)
	}
	decodeBody(t, response, &info)
	if info["endometriomaLocation"] != "bilateral" {
		t.Fatalf("unexpected location after update: %v", info["endometriomaLocation"])
	}
	if info["menarcheAge"] != float64(12) {
		t.Fatal("menarche age must survive a location-only update")
	}
}

func TestMedicalInfoCreateConflictIncludesStoredRecord(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/medical-info",
		`{"menarcheAge":12}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/medical-info",
		`{"menarcheAge":14}`, cookie))
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 from second creation, got %d", response.StatusCode)
	}
	body := map[string]any{}
	decodeBody(t, response, &body)
	stored, ok := body["info"].(map[string]any)
	if !ok {
		t.Fatalf("expected the conflict body to carry the stored record, got %v", body)
	}
	if stored["menarcheAge"] != float64(12) {
		t.Fatal("conflict must return the stored record unmodified")
	}
}

func TestMedicalInfoRejectsUnknownTherapy(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/medical-info",
		`{"hormonalTherapy":"placebo"}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown therapy, got %d", response.StatusCode)
	}
}
