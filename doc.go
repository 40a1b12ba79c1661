// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Community Voice server.

Community Voice is a local-first engagement service: polls with
write-once voting and percentage results, a yes/no pick grid, a
consolidated JSON export, an RSVP and "about you" record, and a
community-events calendar feed. All state lives in a local database
owned by a single profile.

# Starting the Server

No configuration is required for local use:

	go run .

This listens on :8090 with state in ./community-voice.db. Settings
can come from flags, environment variables, or a .env file:

	go run . -p 8090 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 8090)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: community-voice.db)
  - AUTH_FILE (-auth-file): Reset-guard auth file (default: auth.secret)

# Reset Guard

POST /reset wipes all engagement state and is guarded by Basic Auth.
Create the credential file with:

	community-voice hash-password

Without an auth file the guard is disabled (local development only).

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: The voting state manager owning all persisted state
  - handlers: HTTP request handlers (polls, picks, profile, export, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth, logging, CORS, JSON helpers
  - models: Request/response and domain types
  - db: Schema creation and seed data
  - auth: ID generation and Argon2id credentials
  - cliparse: Configuration parsing
  - commands: The hash-password subcommand

See package documentation for each component.
*/
package main
