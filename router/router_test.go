package router

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alfa2267/community-voice/auth"
	"github.com/alfa2267/community-voice/models"
	"github.com/alfa2267/community-voice/testutil"
)

func TestRoutes(t *testing.T) {
	st := testutil.SetupStore(t)
	mux := NewRouter(st, nil)

	// Some activity so /export has something to serve
	testutil.CastTestVote(t, st, "priority-2026", "Street lighting")
	testutil.SetTestPick(t, st, "tree-planting", models.LabelYes)

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{name: "health", method: "GET", path: "/health", expectedStatus: http.StatusOK},
		{name: "root", method: "GET", path: "/", expectedStatus: http.StatusOK},
		{name: "list polls", method: "GET", path: "/polls", expectedStatus: http.StatusOK},
		{name: "poll results", method: "GET", path: "/polls/priority-2026/results", expectedStatus: http.StatusOK},
		{name: "cast vote", method: "POST", path: "/polls/meeting-format/vote",
			body: models.CastVoteRequest{Option: "Hybrid"}, expectedStatus: http.StatusCreated},
		{name: "list items", method: "GET", path: "/items", expectedStatus: http.StatusOK},
		{name: "set pick", method: "POST", path: "/items/repair-cafe/pick",
			body: models.SetPickRequest{Label: models.LabelNo}, expectedStatus: http.StatusOK},
		{name: "pick summary", method: "GET", path: "/picks/summary", expectedStatus: http.StatusOK},
		{name: "get profile", method: "GET", path: "/profile", expectedStatus: http.StatusOK},
		{name: "put profile", method: "PUT", path: "/profile",
			body: map[string]string{"name": "Alex"}, expectedStatus: http.StatusOK},
		{name: "submit rsvp", method: "POST", path: "/rsvp",
			body: models.RSVPRequest{Name: "Sam"}, expectedStatus: http.StatusCreated},
		{name: "get rsvp", method: "GET", path: "/rsvp", expectedStatus: http.StatusOK},
		{name: "export", method: "GET", path: "/export", expectedStatus: http.StatusOK},
		{name: "calendar", method: "GET", path: "/calendar.ics", expectedStatus: http.StatusOK},
		{name: "reset without guard", method: "POST", path: "/reset", expectedStatus: http.StatusOK},
		{name: "method not allowed", method: "DELETE", path: "/polls", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(tt.method, tt.path, tt.body, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestResetRequiresAuth(t *testing.T) {
	st := testutil.SetupStore(t)

	path := filepath.Join(t.TempDir(), "auth.secret")
	if err := auth.CreateAuthFile(path, "admin", "hunter2", false); err != nil {
		t.Fatalf("CreateAuthFile failed: %v", err)
	}
	creds, err := auth.LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials failed: %v", err)
	}

	mux := NewRouter(st, creds)

	// Without credentials
	req := testutil.MakeRequest("POST", "/reset", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// With credentials
	req = testutil.MakeRequest("POST", "/reset", nil, nil)
	req.SetBasicAuth("admin", "hunter2")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResetResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Cleared {
		t.Error("Expected cleared=true")
	}
}
