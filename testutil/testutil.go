// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/monthlog/auth"
	"github.com/danielhkuo/monthlog/cliparse"
	"github.com/danielhkuo/monthlog/db"
	"github.com/danielhkuo/monthlog/models"
)

// SetupTestDB creates a fresh SQLite database with the full schema and the
// built-in city catalog. The file lives in the test's temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "monthlog.db")
	conn, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedCities(conn, db.DefaultCities); err != nil {
		t.Fatalf("Failed to seed cities: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: "sqlite",
		IPHashSalt:   "test-ip-salt",
	}
}

// CreateTestUser inserts a user with a live session.
// The returned user carries the session token.
func CreateTestUser(t *testing.T, conn *sql.DB, email, password string) models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	userID, _ := auth.GenerateID(16)
	token, _ := auth.GenerateSessionToken()
	now := time.Now().UTC()

	_, err = conn.Exec(`
		INSERT INTO app_user (id, email, nickname, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, email, "tester", hash, now)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO user_session (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`, token, userID, now)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return models.User{ID: userID, Email: email, Nickname: "tester", Token: token, CreatedAt: now}
}

// CreateTestContribution stores a contribution with one section row per
// category and returns its ID
func CreateTestContribution(t *testing.T, conn *sql.DB, cityID int64, payload models.ContributionPayload) string {
	t.Helper()

	contributionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO contribution (id, city_id, submitted_at)
		VALUES ($1, $2, $3)
	`, contributionID, cityID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test contribution: %v", err)
	}

	for category, fields := range payload {
		data, _ := json.Marshal(fields)
		_, err := conn.Exec(`
			INSERT INTO contribution_section (contribution_id, category, payload)
			VALUES ($1, $2, $3)
		`, contributionID, category, string(data))
		if err != nil {
			t.Fatalf("Failed to create test section: %v", err)
		}
	}

	return contributionID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// BearerHeader returns request headers carrying a session token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
