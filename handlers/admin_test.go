package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alfa2267/community-voice/models"
	"github.com/alfa2267/community-voice/testutil"
)

func TestReset(t *testing.T) {
	st := testutil.SetupStore(t)
	handler := NewAdminHandler(st)

	testutil.CastTestVote(t, st, "meeting-format", "Online")
	testutil.SetTestPick(t, st, "pothole-program", models.LabelYes)

	req := testutil.MakeRequest("POST", "/reset", nil, nil)
	w := httptest.NewRecorder()

	handler.Reset(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResetResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Cleared {
		t.Error("Expected cleared=true")
	}

	results, err := st.PollResults("meeting-format")
	if err != nil {
		t.Fatalf("PollResults failed: %v", err)
	}
	if results.Total != 0 || results.Voted {
		t.Errorf("Expected empty poll after reset, got %+v", results)
	}

	summary, err := st.PickSummary()
	if err != nil {
		t.Fatalf("PickSummary failed: %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("Expected no picks after reset, got %+v", summary)
	}
}
