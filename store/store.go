// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/alfa2267/community-voice/models"
)

var (
	ErrPollNotFound    = errors.New("poll not found")
	ErrUnknownOption   = errors.New("unknown option")
	ErrAlreadyVoted    = errors.New("vote already recorded for this poll")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidLabel    = errors.New("label must be yes or no")
	ErrNothingToExport = errors.New("nothing to export")
)

// Store is the voting state manager. All persisted engagement state
// (poll tallies, the profile's votes, picks, profile, RSVP, and the
// consolidated export document) goes through it.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Polls returns all polls with their options and current counts.
func (s *Store) Polls() ([]models.Poll, error) {
	rows, err := s.db.Query(`SELECT id, title, total FROM poll ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.Total); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range polls {
		options, err := s.pollOptions(polls[i].ID)
		if err != nil {
			return nil, err
		}
		polls[i].Options = options
	}

	return polls, nil
}

func (s *Store) pollOptions(pollID string) ([]models.PollOption, error) {
	rows, err := s.db.Query(`
		SELECT label, count FROM poll_option
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.PollOption{}
	for rows.Next() {
		var opt models.PollOption
		if err := rows.Scan(&opt.Label, &opt.Count); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

// CastVote records the profile's vote for a poll. Voting is write-once:
// if a vote already exists for the poll the stored choice and all counts
// stay unchanged and ErrAlreadyVoted is returned.
func (s *Store) CastVote(pollID, option string) (*models.UserVote, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var title string
	err = tx.QueryRow(`SELECT title FROM poll WHERE id = $1`, pollID).Scan(&title)
	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	var optionExists bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM poll_option WHERE poll_id = $1 AND label = $2)
	`, pollID, option).Scan(&optionExists)
	if err != nil {
		return nil, fmt.Errorf("failed to check option: %w", err)
	}
	if !optionExists {
		return nil, ErrUnknownOption
	}

	var existing string
	err = tx.QueryRow(`SELECT option_label FROM user_vote WHERE poll_id = $1`, pollID).Scan(&existing)
	if err == nil {
		return nil, ErrAlreadyVoted
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}

	votedAt := time.Now().UTC()
	_, err = tx.Exec(`
		INSERT INTO user_vote (poll_id, option_label, voted_at)
		VALUES ($1, $2, $3)
	`, pollID, option, votedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	// Keep the invariant total == sum(option counts) inside one transaction.
	_, err = tx.Exec(`
		UPDATE poll_option SET count = count + 1
		WHERE poll_id = $1 AND label = $2
	`, pollID, option)
	if err != nil {
		return nil, fmt.Errorf("failed to increment option count: %w", err)
	}

	_, err = tx.Exec(`UPDATE poll SET total = total + 1 WHERE id = $1`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to increment poll total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}

	if err := s.refreshExport(); err != nil {
		return nil, err
	}

	return &models.UserVote{PollID: pollID, Option: option, VotedAt: votedAt}, nil
}

// UserVote returns the recorded choice for a poll, if any.
func (s *Store) UserVote(pollID string) (*models.UserVote, error) {
	var v models.UserVote
	err := s.db.QueryRow(`
		SELECT poll_id, option_label, voted_at FROM user_vote WHERE poll_id = $1
	`, pollID).Scan(&v.PollID, &v.Option, &v.VotedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vote: %w", err)
	}
	return &v, nil
}

// PollResults computes per-option percentages for a poll. Each percentage
// is round(count / max(1, total) * 100): a zero-total poll renders every
// option at 0%, and independent rounding means the percentages are not
// guaranteed to sum to 100.
func (s *Store) PollResults(pollID string) (*models.PollResults, error) {
	var results models.PollResults
	err := s.db.QueryRow(`SELECT id, title, total FROM poll WHERE id = $1`, pollID).
		Scan(&results.PollID, &results.Title, &results.Total)
	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	options, err := s.pollOptions(pollID)
	if err != nil {
		return nil, err
	}

	results.Options = make([]models.OptionResult, 0, len(options))
	for _, opt := range options {
		results.Options = append(results.Options, models.OptionResult{
			Label:   opt.Label,
			Count:   opt.Count,
			Percent: percent(opt.Count, results.Total),
		})
	}

	vote, err := s.UserVote(pollID)
	if err != nil {
		return nil, err
	}
	if vote != nil {
		results.Voted = true
		results.MyOption = vote.Option
	}

	return &results, nil
}

func percent(count, total int) int {
	return int(math.Round(float64(count) / float64(max(1, total)) * 100))
}

// Items lists pick grid items with their current pick label, optionally
// narrowed by category and a case-insensitive title search.
func (s *Store) Items(category, query string) ([]models.PickItem, error) {
	q := `
		SELECT i.id, i.title, i.category, COALESCE(p.label, '')
		FROM pick_item i
		LEFT JOIN pick p ON p.item_id = i.id
	`
	var conds []string
	var args []any
	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("i.category = $%d", len(args)))
	}
	if query != "" {
		args = append(args, "%"+strings.ToLower(query)+"%")
		conds = append(conds, fmt.Sprintf("LOWER(i.title) LIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY i.position"

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.PickItem{}
	for rows.Next() {
		var item models.PickItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Category, &item.Label); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetPick stores the label for an item. Unlike poll votes, picks are
// freely revisable: a later pick for the same item overwrites the
// earlier one.
func (s *Store) SetPick(itemID, label string) (*models.Pick, error) {
	if label != models.LabelYes && label != models.LabelNo {
		return nil, ErrInvalidLabel
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM pick_item WHERE id = $1)`, itemID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check item: %w", err)
	}
	if !exists {
		return nil, ErrItemNotFound
	}

	pickedAt := time.Now().UTC()
	_, err = s.db.Exec(`
		INSERT INTO pick (item_id, label, picked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id) DO UPDATE SET
			label = EXCLUDED.label,
			picked_at = EXCLUDED.picked_at
	`, itemID, label, pickedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to store pick: %w", err)
	}

	if err := s.refreshExport(); err != nil {
		return nil, err
	}

	return &models.Pick{ItemID: itemID, Label: label, PickedAt: pickedAt}, nil
}

// PickSummary counts current picks by label.
func (s *Store) PickSummary() (models.PickSummary, error) {
	var summary models.PickSummary
	err := s.db.QueryRow(`
		SELECT
			COUNT(CASE WHEN label = 'yes' THEN 1 END),
			COUNT(CASE WHEN label = 'no' THEN 1 END),
			COUNT(*)
		FROM pick
	`).Scan(&summary.Yes, &summary.No, &summary.Total)
	if err != nil {
		return models.PickSummary{}, fmt.Errorf("failed to count picks: %w", err)
	}
	return summary, nil
}

// SaveProfile replaces the free-form "about you" record.
func (s *Store) SaveProfile(profile map[string]string) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO profile (id, payload) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload
	`, string(payload))
	if err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}

	return s.refreshExport()
}

// Profile returns the stored record. The second return value reports
// whether a corrupt payload was replaced by an empty record, so callers
// can tell "empty by default" from "corrupt data recovered".
func (s *Store) Profile() (map[string]string, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM profile WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return map[string]string{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query profile: %w", err)
	}

	var profile map[string]string
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		slog.Warn("corrupt profile payload, substituting empty record", "error", err)
		return map[string]string{}, true, nil
	}
	if profile == nil {
		profile = map[string]string{}
	}
	return profile, false, nil
}

// SaveRSVP replaces the RSVP record.
func (s *Store) SaveRSVP(r models.RSVP) (*models.RSVP, error) {
	r.CreatedAt = time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO rsvp (id, name, email, phone, childcare, comments, created_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			childcare = EXCLUDED.childcare,
			comments = EXCLUDED.comments,
			created_at = EXCLUDED.created_at
	`, r.Name, r.Email, r.Phone, r.Childcare, r.Comments, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to store rsvp: %w", err)
	}
	return &r, nil
}

// RSVP returns the stored RSVP record and whether one exists.
func (s *Store) RSVP() (*models.RSVP, bool, error) {
	var r models.RSVP
	err := s.db.QueryRow(`
		SELECT name, email, phone, childcare, comments, created_at FROM rsvp WHERE id = 1
	`).Scan(&r.Name, &r.Email, &r.Phone, &r.Childcare, &r.Comments, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query rsvp: %w", err)
	}
	return &r, true, nil
}

// CalendarEvents returns the scheduled community events in display order.
func (s *Store) CalendarEvents() ([]models.CalendarEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, location, starts_at, ends_at
		FROM calendar_event
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		var ev models.CalendarEvent
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.Location, &ev.StartsAt, &ev.EndsAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// ResetAll clears every persisted engagement key: votes, tallies, picks,
// profile, RSVP and the consolidated export document. Fixed content
// (polls, pick items, calendar events) stays. Irreversible.
func (s *Store) ResetAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM user_vote`,
		`UPDATE poll_option SET count = 0`,
		`UPDATE poll SET total = 0`,
		`DELETE FROM pick`,
		`DELETE FROM profile`,
		`DELETE FROM rsvp`,
		`DELETE FROM export_doc`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to reset state: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	slog.Info("all local engagement state cleared")
	return nil
}
