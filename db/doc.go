// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and seed data.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is written to run unchanged on sqlite and postgres.

# Tables

  - poll: Poll titles and running vote totals
  - poll_option: Option labels and per-option counts
  - user_vote: The profile's single recorded choice per poll (write-once)
  - pick_item: The fixed pick grid items
  - pick: Current label per item (last write wins)
  - profile: Free-form "about you" record (single row, JSON payload)
  - rsvp: RSVP record (single row)
  - export_doc: Consolidated export document (single row, recomputed on write)
  - calendar_event: The scheduled community events for the calendar feed

# Seeding

Seed inserts the fixed polls, pick items and calendar events. Rows that
already exist are skipped so vote tallies and picks survive restarts:

	if err := db.Seed(conn); err != nil {
		log.Fatal(err)
	}
*/
package db
