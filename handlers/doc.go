// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Community Voice API.

# Handler Types

Each handler is a struct holding the state store:

  - PollHandler: Poll listing, results and write-once voting
  - PickHandler: Pick grid listing (filter/search), picks and summary
  - ProfileHandler: "About you" record and RSVP
  - ExportHandler: Consolidated JSON export and the ICS calendar feed
  - AdminHandler: Destructive reset of all local state

Handlers are created via constructor functions that accept *store.Store:

	pollHandler := handlers.NewPollHandler(st)

# Voting Rules

Each poll accepts exactly one vote per profile:

	POST /polls/{id}/vote    → 201 on first vote, 200 (recorded: false) after

A repeated attempt is not an error; counts and the stored choice stay
unchanged. Results are always readable:

	GET /polls/{id}/results  → per-option counts and percentages

# Picks

	GET  /items              → grid items (?category=, ?q=)
	POST /items/{id}/pick    → last-write-wins yes/no
	GET  /picks/summary      → counts by label

# Export and Calendar

	GET /export        → indented JSON download (409 when nothing to export)
	GET /calendar.ics  → iCalendar subscription feed (METHOD:PUBLISH)

# Reset

	POST /reset  → clears everything; Basic Auth via middleware.RequireAuth
*/
package handlers
