// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

type seedPoll struct {
	id      string
	title   string
	options []string
}

type seedItem struct {
	id       string
	title    string
	category string
}

type seedEvent struct {
	id          string
	title       string
	description string
	location    string
	startsAt    time.Time
	endsAt      time.Time
}

var seedPolls = []seedPoll{
	{
		id:      "priority-2026",
		title:   "Which project should the neighbourhood fund first?",
		options: []string{"Community garden", "Youth centre", "Street lighting", "Public library hours"},
	},
	{
		id:      "meeting-format",
		title:   "How should we hold our monthly meetings?",
		options: []string{"In person", "Online", "Hybrid"},
	},
	{
		id:      "cleanup-day",
		title:   "Best day for the spring clean-up?",
		options: []string{"Saturday morning", "Saturday afternoon", "Sunday morning"},
	},
}

var seedItems = []seedItem{
	{id: "speed-bumps-main", title: "Speed bumps on Main Street", category: "safety"},
	{id: "crosswalk-school", title: "Raised crosswalk at the primary school", category: "safety"},
	{id: "led-streetlights", title: "LED streetlight upgrade", category: "infrastructure"},
	{id: "pothole-program", title: "Quarterly pothole repair program", category: "infrastructure"},
	{id: "tree-planting", title: "Tree planting along Elm Avenue", category: "environment"},
	{id: "rain-gardens", title: "Rain gardens at the bus terminus", category: "environment"},
	{id: "skate-park", title: "Skate park behind the sports hall", category: "youth"},
	{id: "homework-club", title: "After-school homework club", category: "youth"},
	{id: "repair-cafe", title: "Monthly repair café", category: "community"},
	{id: "tool-library", title: "Shared tool library", category: "community"},
}

// The four scheduled events published in the calendar feed.
var seedEvents = []seedEvent{
	{
		id:          "town-hall-q1",
		title:       "Town Hall Meeting",
		description: "Open floor with the council; bring questions, proposals and neighbours.",
		location:    "Community Centre, Main Hall",
		startsAt:    time.Date(2026, time.February, 12, 18, 30, 0, 0, time.UTC),
		endsAt:      time.Date(2026, time.February, 12, 20, 30, 0, 0, time.UTC),
	},
	{
		id:          "cleanup-spring",
		title:       "Spring Clean-Up Day",
		description: "Gloves, bags and coffee provided; meet at the park gates.",
		location:    "Riverside Park",
		startsAt:    time.Date(2026, time.March, 21, 9, 0, 0, 0, time.UTC),
		endsAt:      time.Date(2026, time.March, 21, 13, 0, 0, 0, time.UTC),
	},
	{
		id:          "budget-workshop",
		title:       "Participatory Budget Workshop",
		description: "Walk through this year's proposals and how the pick results feed in.",
		location:    "Library, Meeting Room 2",
		startsAt:    time.Date(2026, time.April, 9, 18, 0, 0, 0, time.UTC),
		endsAt:      time.Date(2026, time.April, 9, 20, 0, 0, 0, time.UTC),
	},
	{
		id:          "family-fair",
		title:       "Family Fun Fair",
		description: "Stalls, games and the results announcement for the funding vote.",
		location:    "School Playing Fields",
		startsAt:    time.Date(2026, time.May, 16, 11, 0, 0, 0, time.UTC),
		endsAt:      time.Date(2026, time.May, 16, 16, 0, 0, 0, time.UTC),
	},
}

// Seed inserts the fixed polls, pick items and calendar events.
// Existing rows are left untouched, so tallies survive restarts.
func Seed(db *sql.DB) error {
	for _, p := range seedPolls {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM poll WHERE id = $1)`, p.id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check poll %s: %w", p.id, err)
		}
		if exists {
			continue
		}

		if _, err := db.Exec(`INSERT INTO poll (id, title, total) VALUES ($1, $2, 0)`, p.id, p.title); err != nil {
			return fmt.Errorf("failed to seed poll %s: %w", p.id, err)
		}
		for i, label := range p.options {
			_, err := db.Exec(`
				INSERT INTO poll_option (poll_id, label, count, position)
				VALUES ($1, $2, 0, $3)
			`, p.id, label, i)
			if err != nil {
				return fmt.Errorf("failed to seed option %q for poll %s: %w", label, p.id, err)
			}
		}
	}

	for i, item := range seedItems {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM pick_item WHERE id = $1)`, item.id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check item %s: %w", item.id, err)
		}
		if exists {
			continue
		}

		_, err = db.Exec(`
			INSERT INTO pick_item (id, title, category, position)
			VALUES ($1, $2, $3, $4)
		`, item.id, item.title, item.category, i)
		if err != nil {
			return fmt.Errorf("failed to seed item %s: %w", item.id, err)
		}
	}

	for i, ev := range seedEvents {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM calendar_event WHERE id = $1)`, ev.id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check event %s: %w", ev.id, err)
		}
		if exists {
			continue
		}

		_, err = db.Exec(`
			INSERT INTO calendar_event (id, title, description, location, starts_at, ends_at, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, ev.id, ev.title, ev.description, ev.location, ev.startsAt, ev.endsAt, i)
		if err != nil {
			return fmt.Errorf("failed to seed event %s: %w", ev.id, err)
		}
	}

	return nil
}
