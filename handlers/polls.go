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

type PollHandler struct {
	store *store.Store
}

func NewPollHandler(st *store.Store) *PollHandler {
	return &PollHandler{store: st}
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.Polls()
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string][]models.Poll{
		"polls": polls,
	})
}

// GetResults handles GET /polls/{id}/results
func (h *PollHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	results, err := h.store.PollResults(pollID)
	if err == store.ErrPollNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to compute results", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// CastVote handles POST /polls/{id}/vote
// Voting is write-once per poll: a repeated attempt is not an error,
// it simply leaves the recorded choice and counts unchanged.
func (h *PollHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Option == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option is required")
		return
	}

	vote, err := h.store.CastVote(pollID, req.Option)
	switch err {
	case nil:
		slog.Info("vote recorded", "poll_id", pollID, "option", req.Option)
		middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
			Recorded: true,
			Option:   vote.Option,
		})
	case store.ErrAlreadyVoted:
		existing, verr := h.store.UserVote(pollID)
		if verr != nil || existing == nil {
			slog.Error("failed to read existing vote", "error", verr, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
			Recorded: false,
			Option:   existing.Option,
			Message:  "Vote already recorded for this poll",
		})
	case store.ErrPollNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case store.ErrUnknownOption:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown option: "+req.Option)
	default:
		slog.Error("failed to cast vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
	}
}
