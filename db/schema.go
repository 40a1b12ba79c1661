// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is written to run unchanged on both sqlite and postgres:
// $N placeholders, TEXT/INTEGER/TIMESTAMP column types, no serial columns.
const schema = `
-- Polls (aggregate tallies)
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    total INTEGER NOT NULL DEFAULT 0 CHECK (total >= 0)
);

-- Options per poll
CREATE TABLE IF NOT EXISTS poll_option (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    label TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
    position INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (poll_id, label)
);

CREATE INDEX IF NOT EXISTS idx_poll_option_poll_id ON poll_option(poll_id);

-- The profile's single recorded choice per poll (write-once)
CREATE TABLE IF NOT EXISTS user_vote (
    poll_id TEXT PRIMARY KEY REFERENCES poll(id) ON DELETE CASCADE,
    option_label TEXT NOT NULL,
    voted_at TIMESTAMP NOT NULL
);

-- Pick grid items
CREATE TABLE IF NOT EXISTS pick_item (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_pick_item_category ON pick_item(category);

-- Current pick per item (last write wins)
CREATE TABLE IF NOT EXISTS pick (
    item_id TEXT PRIMARY KEY REFERENCES pick_item(id) ON DELETE CASCADE,
    label TEXT NOT NULL CHECK (label IN ('yes', 'no')),
    picked_at TIMESTAMP NOT NULL
);

-- Free-form "about you" record, one row, JSON payload
CREATE TABLE IF NOT EXISTS profile (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    payload TEXT NOT NULL
);

-- RSVP record, one row
CREATE TABLE IF NOT EXISTS rsvp (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    name TEXT NOT NULL,
    email TEXT,
    phone TEXT,
    childcare BOOLEAN NOT NULL DEFAULT FALSE,
    comments TEXT,
    created_at TIMESTAMP NOT NULL
);

-- Consolidated export document, one row, recomputed on every write
CREATE TABLE IF NOT EXISTS export_doc (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    doc_id TEXT NOT NULL,
    payload TEXT NOT NULL,
    generated_at TIMESTAMP NOT NULL
);

-- Scheduled community events for the calendar feed
CREATE TABLE IF NOT EXISTS calendar_event (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    location TEXT NOT NULL,
    starts_at TIMESTAMP NOT NULL,
    ends_at TIMESTAMP NOT NULL,
    position INTEGER NOT NULL DEFAULT 0
);
`
