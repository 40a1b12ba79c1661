package store_test

import (
	"encoding/json"
	"testing"

	"github.com/alfa2267/community-voice/models"
	"github.com/alfa2267/community-voice/store"
	"github.com/alfa2267/community-voice/testutil"
)

func TestConsolidatedNothingToExport(t *testing.T) {
	st := testutil.SetupStore(t)

	if _, err := st.Consolidated(); err != store.ErrNothingToExport {
		t.Errorf("Expected ErrNothingToExport on fresh state, got %v", err)
	}

	// No persisted document either
	if _, found, err := st.StoredExport(); err != nil || found {
		t.Errorf("Expected no stored export (found=%v, err=%v)", found, err)
	}
}

func TestConsolidatedAggregatesState(t *testing.T) {
	st := testutil.SetupStore(t)

	testutil.CastTestVote(t, st, "priority-2026", "Community garden")
	testutil.CastTestVote(t, st, "meeting-format", "Hybrid")
	testutil.SetTestPick(t, st, "skate-park", models.LabelYes)
	testutil.SetTestPick(t, st, "tree-planting", models.LabelNo)
	testutil.SetTestPick(t, st, "tree-planting", models.LabelYes) // revised
	if err := st.SaveProfile(map[string]string{"name": "Alex"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	doc, err := st.Consolidated()
	if err != nil {
		t.Fatalf("Consolidated failed: %v", err)
	}

	if doc.ID == "" || doc.GeneratedAt.IsZero() {
		t.Errorf("Expected document ID and timestamp, got %+v", doc)
	}
	if doc.Profile["name"] != "Alex" {
		t.Errorf("Expected profile in export, got %v", doc.Profile)
	}
	if len(doc.Votes) != 2 {
		t.Fatalf("Expected 2 votes in export, got %d", len(doc.Votes))
	}
	for _, v := range doc.Votes {
		if v.Title == "" || v.VotedAt.IsZero() {
			t.Errorf("Vote missing title or timestamp: %+v", v)
		}
	}
	// Revised pick appears once, with the final label
	if len(doc.Picks) != 2 {
		t.Fatalf("Expected 2 picks in export, got %d", len(doc.Picks))
	}
	for _, p := range doc.Picks {
		if p.ItemID == "tree-planting" && p.Label != models.LabelYes {
			t.Errorf("Expected final label yes for revised pick, got %q", p.Label)
		}
	}

	want := models.ExportSummary{TotalVotes: 2, PicksYes: 2, PicksNo: 0, PollsCompleted: 2}
	if doc.Summary != want {
		t.Errorf("Expected summary %+v, got %+v", want, doc.Summary)
	}
}

func TestWritesRefreshStoredExport(t *testing.T) {
	st := testutil.SetupStore(t)

	testutil.SetTestPick(t, st, "repair-cafe", models.LabelYes)

	payload, found, err := st.StoredExport()
	if err != nil || !found {
		t.Fatalf("Expected stored export after pick (found=%v, err=%v)", found, err)
	}

	var doc models.ConsolidatedExport
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("Stored export is not valid JSON: %v", err)
	}
	if doc.Summary.PicksYes != 1 {
		t.Errorf("Expected stored export to reflect pick, got %+v", doc.Summary)
	}
	firstID := doc.ID

	// A vote refreshes the document again
	testutil.CastTestVote(t, st, "cleanup-day", "Saturday morning")

	payload, found, err = st.StoredExport()
	if err != nil || !found {
		t.Fatalf("Expected stored export after vote (found=%v, err=%v)", found, err)
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("Stored export is not valid JSON: %v", err)
	}
	if doc.Summary.TotalVotes != 1 {
		t.Errorf("Expected refreshed export to include the vote, got %+v", doc.Summary)
	}
	if doc.ID == firstID {
		t.Error("Expected a new document ID after refresh")
	}
}

func TestCalendarEventsSeeded(t *testing.T) {
	st := testutil.SetupStore(t)

	events, err := st.CalendarEvents()
	if err != nil {
		t.Fatalf("CalendarEvents failed: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("Expected the 4 fixed events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Title == "" || ev.Location == "" {
			t.Errorf("Event missing fields: %+v", ev)
		}
		if !ev.EndsAt.After(ev.StartsAt) {
			t.Errorf("Event %s ends before it starts", ev.ID)
		}
	}
}
