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

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// Reset handles POST /reset
// The only destructive operation: clears every persisted engagement
// key and cannot be undone. The route is wrapped with RequireAuth.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ResetAll(); err != nil {
		slog.Error("failed to reset state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset state")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{Cleared: true})
}
