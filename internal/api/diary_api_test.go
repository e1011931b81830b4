package api

import (
	"net/http"
	"testing"
)

func TestDiaryRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"date":"2026-01-10","mood":"happy"}`, cookie))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 from create, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performRequest(t, app, authedJSONRequest(http.MethodGet, "/api/diary/2026-01-10", "", cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from get, got %d", response.StatusCode)
	}
	entry := map[string]any{}
	decodeBody(t, response, &entry)

	if entry["mood"] != "happy" {
		t.Fatalf("unexpected mood %v", entry["mood"])
	}
	for _, key := range []string{"painSymptoms", "physicalActivities", "medicines", "visits"} {
		collection, ok := entry[key].([]any)
		if !ok {
			t.Fatalf("expected %s to be an array, got %T", key, entry[key])
		}
		if len(collection) != 0 {
			t.Fatalf("expected %s to default to empty, got %v", key, collection)
		}
	}
	if entry["pregnancyTest"] != "none" {
		t.Fatalf("unexpected pregnancy test default %v", entry["pregnancyTest"])
	}
}

func TestDiaryGetMissingDateIsNotFound(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodGet, "/api/diary/2026-01-10", "", cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for an empty date, got %d", response.StatusCode)
	}
}

func TestDiaryCreateConflictIncludesExistingEntry(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"date":"2026-01-10","mood":"sad"}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 from first create, got %d", response.StatusCode)
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"date":"2026-01-10","mood":"happy"}`, cookie))
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 from second create, got %d", response.StatusCode)
	}

	body := map[string]any{}
	decodeBody(t, response, &body)
	existing, ok := body["entry"].(map[string]any)
	if !ok {
		t.Fatalf("expected the conflict body to carry the stored entry, got %v", body)
	}
	if existing["mood"] != "sad" {
		t.Fatal("conflict must return the stored entry unmodified")
	}
}

func TestDiaryPartialUpdatePreservesOtherFields(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary", `{
		"date":"2026-01-10",
		"mood":"neutral",
		"painSymptoms":[{"location":"pelvic","intensity":6}],
		"bloodPresence":{"inUrine":true}
	}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 from create, got %d", response.StatusCode)
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodPut, "/api/diary/2026-01-10",
		`{"notes":"only notes changed"}`, cookie))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from update, got %d", response.StatusCode)
	}
	entry := map[string]any{}
	decodeBody(t, response, &entry)

	if entry["notes"] != "only notes changed" {
		t.Fatalf("unexpected notes %v", entry["notes"])
	}
	if entry["mood"] != "neutral" {
		t.Fatal("mood must survive a notes-only update")
	}
	symptoms, ok := entry["painSymptoms"].([]any)
	if !ok || len(symptoms) != 1 {
		t.Fatalf("pain symptoms must survive a notes-only update, got %v", entry["painSymptoms"])
	}
	if entry["bloodInUrine"] != true {
		t.Fatal("blood flags must survive a notes-only update")
	}
}

func TestDiaryExplicitNullClearsField(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"date":"2026-01-10","mood":"happy","weight":61.5}`, cookie))
	response.Body.Close()

	response = performRequest(t, app, authedJSONRequest(http.MethodPut, "/api/diary/2026-01-10",
		`{"mood":null}`, cookie))
	entry := map[string]any{}
	decodeBody(t, response, &entry)

	if entry["mood"] != nil {
		t.Fatalf("explicit null should clear mood, got %v", entry["mood"])
	}
	if entry["weight"] != 61.5 {
		t.Fatalf("weight must survive, got %v", entry["weight"])
	}
}

func TestDiaryUpdateMissingDateIsNotFound(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPut, "/api/diary/2026-01-10",
		`{"mood":"happy"}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 updating a missing date, got %d", response.StatusCode)
	}
}

func TestDiaryDelete(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"date":"2026-01-10"}`, cookie))
	response.Body.Close()

	response = performRequest(t, app, authedJSONRequest(http.MethodDelete, "/api/diary/2026-01-10", "", cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 from delete, got %d", response.StatusCode)
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodDelete, "/api/diary/2026-01-10", "", cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 from second delete, got %d", response.StatusCode)
	}
}

func TestDiaryRejectsMalformedDates(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	badDates := []string{"10-01-2026", "2026-13-40", "today", "2026-01-10T12:00:00Z"}
	for _, date := range badDates {
		response := performRequest(t, app, authedJSONRequest(http.MethodGet, "/api/diary/"+date, "", cookie))
		response.Body.Close()
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for date %q, got %d", date, response.StatusCode)
		}
	}

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"mood":"happy"}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for create without a date, got %d", response.StatusCode)
	}
}

func TestDiaryRejectsUnknownEnumValues(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"date":"2026-01-10","mood":"ecstatic"}`, cookie))
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mood, got %d", response.StatusCode)
	}
}

func TestDiaryNormalizesPainAndActivities(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary", `{
		"date":"2026-01-10",
		"painSymptoms":[{"location":"invalid-loc","intensity":5},{"location":"pelvic","intensity":11}],
		"physicalActivities":["none","yoga"]
	}`, cookie))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 from create, got %d", response.StatusCode)
	}
	entry := map[string]any{}
	decodeBody(t, response, &entry)

	symptoms, _ := entry["painSymptoms"].([]any)
	if len(symptoms) != 1 {
		t.Fatalf("unknown locations must be dropped, got %v", entry["painSymptoms"])
	}
	symptom, _ := symptoms[0].(map[string]any)
	if symptom["location"] != "pelvic" || symptom["intensity"] != float64(10) {
		t.Fatalf("expected clamped pelvic symptom, got %v", symptom)
	}

	activities, _ := entry["physicalActivities"].([]any)
	if len(activities) != 1 || activities[0] != "yoga" {
		t.Fatalf("'none' must yield to real activities, got %v", entry["physicalActivities"])
	}
}

func TestDiaryEntriesAreInvisibleAcrossUsers(t *testing.T) {
	app, _ := newTestApp(t)
	alice := registerTestUser(t, app, "alice")
	bob := registerTestUser(t, app, "bob")

	response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
		`{"date":"2026-01-10","mood":"happy"}`, alice))
	response.Body.Close()

	response = performRequest(t, app, authedJSONRequest(http.MethodGet, "/api/diary/2026-01-10", "", bob))
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("bob must not see alice's entry, got %d", response.StatusCode)
	}

	response = performRequest(t, app, authedJSONRequest(http.MethodGet, "/api/diary", "", bob))
	entries := []any{}
	decodeBody(t, response, &entries)
	if len(entries) != 0 {
		t.Fatalf("bob's diary should be empty, got %d entries", len(entries))
	}
}

func TestDiaryListNewestFirst(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "alice")

	for _, date := range []string{"2026-01-08", "2026-01-10", "2026-01-09"} {
		response := performRequest(t, app, authedJSONRequest(http.MethodPost, "/api/diary",
			`{"date":"`+date+`"}`, cookie))
		response.Body.Close()
	}

	response := performRequest(t, app, authedJSONRequest(http.MethodGet, "/api/diary", "", cookie))
	entries := []map[string]any{}
	decodeBody(t, response, &entries)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	first, _ := entries[0]["date"].(string)
	last, _ := entries[2]["date"].(string)
	if first < last {
		t.Fatalf("expected newest first, got %q before %q", first, last)
	}
}
