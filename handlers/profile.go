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

type ProfileHandler struct {
	store *store.Store
}

func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// GetProfile handles GET /profile
// Returns the free-form "about you" record. A corrupt stored payload
// is replaced by an empty record and flagged via "recovered".
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, recovered, err := h.store.Profile()
	if err != nil {
		slog.Error("failed to load profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProfileResponse{
		Profile:   profile,
		Recovered: recovered,
	})
}

// PutProfile handles PUT /profile
func (h *ProfileHandler) PutProfile(w http.ResponseWriter, r *http.Request) {
	var profile map[string]string
	if err := middleware.ParseJSONBody(r, &profile); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if profile == nil {
		profile = map[string]string{}
	}

	if err := h.store.SaveProfile(profile); err != nil {
		slog.Error("failed to save profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	slog.Info("profile saved", "fields", len(profile))

	middleware.JSONResponse(w, http.StatusOK, models.ProfileResponse{Profile: profile})
}

// SubmitRSVP handles POST /rsvp
// Name is the only required field; a missing name is reported with the
// field attached so the client can focus it inline.
func (h *ProfileHandler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var req models.RSVPRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.FieldErrorResponse(w, http.StatusBadRequest, "name", "name is required")
		return
	}

	rsvp, err := h.store.SaveRSVP(models.RSVP{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Childcare: req.Childcare,
		Comments:  req.Comments,
	})
	if err != nil {
		slog.Error("failed to save rsvp", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save RSVP")
		return
	}

	slog.Info("rsvp saved", "name", rsvp.Name, "childcare", rsvp.Childcare)

	middleware.JSONResponse(w, http.StatusCreated, rsvp)
}

// GetRSVP handles GET /rsvp
func (h *ProfileHandler) GetRSVP(w http.ResponseWriter, r *http.Request) {
	rsvp, found, err := h.store.RSVP()
	if err != nil {
		slog.Error("failed to load rsvp", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No RSVP recorded")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rsvp)
}
