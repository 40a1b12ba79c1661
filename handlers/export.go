// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alfa2267/community-voice/middleware"
	"github.com/alfa2267/community-voice/models"
	"github.com/alfa2267/community-voice/store"
)

// ICS constants
const (
	ICSProductID    = "-//Community Voice//Engagement Calendar//EN"
	ICSCalendarName = "Community Voice Events"
)

type ExportHandler struct {
	store *store.Store
}

func NewExportHandler(st *store.Store) *ExportHandler {
	return &ExportHandler{store: st}
}

// ExportConsolidated handles GET /export
// Recomputes the consolidated document from current state and hands it
// to the caller as an indented JSON download. When no votes and no
// picks exist the caller is told there is nothing to export and no
// file is produced.
func (h *ExportHandler) ExportConsolidated(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Consolidated()
	if err == store.ErrNothingToExport {
		middleware.ErrorResponse(w, http.StatusConflict, "Nothing to export yet - cast a vote or pick an item first")
		return
	}
	if err != nil {
		slog.Error("failed to build export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		slog.Error("failed to encode export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode export")
		return
	}

	slog.Info("export generated", "doc_id", doc.ID,
		"votes", doc.Summary.TotalVotes, "picks", doc.Summary.PicksYes+doc.Summary.PicksNo)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=community-voice-export.json`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

// Calendar handles GET /calendar.ics
// Serves the scheduled community events as an iCalendar subscription
// feed: METHOD:PUBLISH, inline content (no attachment header), stable
// UIDs so calendar apps update events in place.
func (h *ExportHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.CalendarEvents()
	if err != nil {
		slog.Error("failed to load calendar events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintln(w, "METHOD:PUBLISH")
	fmt.Fprintf(w, "X-WR-CALNAME:%s\n", ICSCalendarName)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")
	fmt.Fprintln(w, "X-PUBLISHED-TTL:PT1H")

	dtstamp := time.Now().UTC().Format(icsTimeLayout)
	for _, ev := range events {
		writeICSEvent(w, ev, dtstamp)
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

const icsTimeLayout = "20060102T150405Z"

func writeICSEvent(w http.ResponseWriter, ev models.CalendarEvent, dtstamp string) {
	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:%s\n", eventUID(ev))
	fmt.Fprintf(w, "DTSTAMP:%s\n", dtstamp)
	fmt.Fprintf(w, "DTSTART:%s\n", ev.StartsAt.UTC().Format(icsTimeLayout))
	fmt.Fprintf(w, "DTEND:%s\n", ev.EndsAt.UTC().Format(icsTimeLayout))
	fmt.Fprintf(w, "SUMMARY:%s\n", escapeICSText(ev.Title))
	fmt.Fprintf(w, "DESCRIPTION:%s\n", escapeICSText(ev.Description))
	fmt.Fprintf(w, "LOCATION:%s\n", escapeICSText(ev.Location))
	fmt.Fprintln(w, "END:VEVENT")
}

// eventUID derives a stable unique identifier from the event ID, so a
// re-served feed updates events instead of duplicating them.
func eventUID(ev models.CalendarEvent) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("community-voice/events/"+ev.ID))
	return id.String() + "@community-voice"
}

// escapeICSText sanitizes free text per RFC 5545 (backslash, comma,
// semicolon, newline).
func escapeICSText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		",", `\,`,
		";", `\;`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
