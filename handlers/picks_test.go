package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alfa2267/community-voice/models"
	"github.com/alfa2267/community-voice/testutil"
)

func TestSetPick(t *testing.T) {
	st := testutil.SetupStore(t)
	handler := NewPickHandler(st)

	tests := []struct {
		name           string
		itemID         string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.SetPickResponse)
	}{
		{
			name:           "valid yes pick",
			itemID:         "repair-cafe",
			requestBody:    models.SetPickRequest{Label: models.LabelYes},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.SetPickResponse) {
				if resp.Label != models.LabelYes {
					t.Errorf("Expected yes, got %q", resp.Label)
				}
				if resp.Summary.Yes != 1 || resp.Summary.Total != 1 {
					t.Errorf("Unexpected summary %+v", resp.Summary)
				}
			},
		},
		{
			name:           "invalid label",
			itemID:         "repair-cafe",
			requestBody:    models.SetPickRequest{Label: "maybe"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "item not found",
			itemID:         "nonexistent",
			requestBody:    models.SetPickRequest{Label: models.LabelYes},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/items/"+tt.itemID+"/pick", tt.requestBody, nil)
			req.SetPathValue("id", tt.itemID)
			w := httptest.NewRecorder()

			handler.SetPick(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil && w.Code == tt.expectedStatus {
				var resp models.SetPickResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestSetPickOverwrite(t *testing.T) {
	st := testutil.SetupStore(t)
	handler := NewPickHandler(st)

	pick := func(label string) models.SetPickResponse {
		req := testutil.MakeRequest("POST", "/items/tool-library/pick",
			models.SetPickRequest{Label: label}, nil)
		req.SetPathValue("id", "tool-library")
		w := httptest.NewRecorder()
		handler.SetPick(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.SetPickResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	pick(models.LabelYes)
	resp := pick(models.LabelNo)

	// Summary reflects only the final label
	if resp.Summary.Yes != 0 || resp.Summary.No != 1 || resp.Summary.Total != 1 {
		t.Errorf("Expected summary {0 1 1} after overwrite, got %+v", resp.Summary)
	}
}

func TestListItems(t *testing.T) {
	st := testutil.SetupStore(t)
	handler := NewPickHandler(st)

	tests := []struct {
		name          string
		url           string
		expectedCount int
	}{
		{name: "all items", url: "/items", expectedCount: 10},
		{name: "by category", url: "/items?category=youth", expectedCount: 2},
		{name: "by search", url: "/items?q=library", expectedCount: 1},
		{name: "category and search", url: "/items?category=safety&q=crosswalk", expectedCount: 1},
		{name: "no matches", url: "/items?q=hovercraft", expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", tt.url, nil, nil)
			w := httptest.NewRecorder()

			handler.ListItems(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp map[string][]models.PickItem
			testutil.AssertJSON(t, w, &resp)
			if len(resp["items"]) != tt.expectedCount {
				t.Errorf("Expected %d items, got %d", tt.expectedCount, len(resp["items"]))
			}
		})
	}
}

func TestGetSummary(t *testing.T) {
	st := testutil.SetupStore(t)
	handler := NewPickHandler(st)

	testutil.SetTestPick(t, st, "skate-park", models.LabelYes)
	testutil.SetTestPick(t, st, "rain-gardens", models.LabelNo)

	req := testutil.MakeRequest("GET", "/picks/summary", nil, nil)
	w := httptest.NewRecorder()

	handler.GetSummary(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.PickSummary
	testutil.AssertJSON(t, w, &summary)
	if summary.Yes != 1 || summary.No != 1 || summary.Total != 2 {
		t.Errorf("Unexpected summary %+v", summary)
	}
}
