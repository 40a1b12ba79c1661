// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alfa2267/community-voice/middleware"
	"github.com/alfa2267/community-voice/models"
	"github.com/alfa2267/community-voice/store"
)

type PickHandler struct {
	store *store.Store
}

func NewPickHandler(st *store.Store) *PickHandler {
	return &PickHandler{store: st}
}

// ListItems handles GET /items
// Supports ?category= and ?q= (case-insensitive title search).
func (h *PickHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	items, err := h.store.Items(category, query)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string][]models.PickItem{
		"items": items,
	})
}

// SetPick handles POST /items/{id}/pick
// Picks are last-write-wins: a later pick for the same item replaces
// the earlier one.
func (h *PickHandler) SetPick(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	var req models.SetPickRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pick, err := h.store.SetPick(itemID, req.Label)
	switch err {
	case nil:
	case store.ErrItemNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	case store.ErrInvalidLabel:
		middleware.ErrorResponse(w, http.StatusBadRequest, "label must be yes or no")
		return
	default:
		slog.Error("failed to set pick", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set pick")
		return
	}

	summary, err := h.store.PickSummary()
	if err != nil {
		slog.Error("failed to summarize picks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("pick stored", "item_id", itemID, "label", pick.Label)

	middleware.JSONResponse(w, http.StatusOK, models.SetPickResponse{
		ItemID:  pick.ItemID,
		Label:   pick.Label,
		Summary: summary,
	})
}

// GetSummary handles GET /picks/summary
func (h *PickHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.PickSummary()
	if err != nil {
		slog.Error("failed to summarize picks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
