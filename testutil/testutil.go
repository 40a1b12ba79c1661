// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/alfa2267/community-voice/db"
	"github.com/alfa2267/community-voice/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema and seed data. Single connection: in-memory sqlite databases
// are per-connection.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.Seed(conn); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// SetupStore creates a store backed by a fresh seeded test database.
func SetupStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// CastTestVote records a vote and fails the test on error.
func CastTestVote(t *testing.T, st *store.Store, pollID, option string) {
	t.Helper()
	if _, err := st.CastVote(pollID, option); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// SetTestPick stores a pick and fails the test on error.
func SetTestPick(t *testing.T, st *store.Store, itemID, label string) {
	t.Helper()
	if _, err := st.SetPick(itemID, label); err != nil {
		t.Fatalf("Failed to set test pick: %v", err)
	}
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
