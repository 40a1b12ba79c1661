// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/alfa2267/community-voice/auth"
	"github.com/alfa2267/community-voice/handlers"
	"github.com/alfa2267/community-voice/middleware"
	"github.com/alfa2267/community-voice/store"
)

func NewRouter(st *store.Store, creds *auth.Credentials) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st)
	pickHandler := handlers.NewPickHandler(st)
	profileHandler := handlers.NewProfileHandler(st)
	exportHandler := handlers.NewExportHandler(st)
	adminHandler := handlers.NewAdminHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(pollHandler.GetResults))
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(pollHandler.CastVote))

	// Pick grid
	mux.HandleFunc("GET /items", middleware.WithLogging(pickHandler.ListItems))
	mux.HandleFunc("POST /items/{id}/pick", middleware.WithLogging(pickHandler.SetPick))
	mux.HandleFunc("GET /picks/summary", middleware.WithLogging(pickHandler.GetSummary))

	// Profile and RSVP
	mux.HandleFunc("GET /profile", middleware.WithLogging(profileHandler.GetProfile))
	mux.HandleFunc("PUT /profile", middleware.WithLogging(profileHandler.PutProfile))
	mux.HandleFunc("POST /rsvp", middleware.WithLogging(profileHandler.SubmitRSVP))
	mux.HandleFunc("GET /rsvp", middleware.WithLogging(profileHandler.GetRSVP))

	// Downloads
	mux.HandleFunc("GET /export", middleware.WithLogging(exportHandler.ExportConsolidated))
	mux.HandleFunc("GET /calendar.ics", middleware.WithLogging(exportHandler.Calendar))

	// Destructive reset (guarded)
	mux.HandleFunc("POST /reset", middleware.WithLogging(middleware.RequireAuth(creds, adminHandler.Reset)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("community-voice API v1"))
	})

	return mux
}
