// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alfa2267/community-voice/models"
)

// Consolidated recomputes the export document from current state.
// Reading never mutates; the persisted copy is refreshed as a side
// effect of CastVote, SetPick and SaveProfile instead.
// Returns ErrNothingToExport when no votes and no picks exist.
func (s *Store) Consolidated() (*models.ConsolidatedExport, error) {
	votes, err := s.exportVotes()
	if err != nil {
		return nil, err
	}
	picks, err := s.exportPicks()
	if err != nil {
		return nil, err
	}

	if len(votes) == 0 && len(picks) == 0 {
		return nil, ErrNothingToExport
	}

	profile, _, err := s.Profile()
	if err != nil {
		return nil, err
	}

	doc := &models.ConsolidatedExport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Profile:     profile,
		Picks:       picks,
		Votes:       votes,
	}
	for _, p := range picks {
		switch p.Label {
		case models.LabelYes:
			doc.Summary.PicksYes++
		case models.LabelNo:
			doc.Summary.PicksNo++
		}
	}
	doc.Summary.TotalVotes = len(votes)
	doc.Summary.PollsCompleted = len(votes)

	return doc, nil
}

func (s *Store) exportVotes() ([]models.ExportVote, error) {
	rows, err := s.db.Query(`
		SELECT v.poll_id, p.title, v.option_label, v.voted_at
		FROM user_vote v
		JOIN poll p ON p.id = v.poll_id
		ORDER BY v.voted_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes for export: %w", err)
	}
	defer rows.Close()

	votes := []models.ExportVote{}
	for rows.Next() {
		var v models.ExportVote
		if err := rows.Scan(&v.PollID, &v.Title, &v.Option, &v.VotedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func (s *Store) exportPicks() ([]models.ExportPick, error) {
	rows, err := s.db.Query(`
		SELECT p.item_id, i.title, p.label, p.picked_at
		FROM pick p
		JOIN pick_item i ON i.id = p.item_id
		ORDER BY p.picked_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks for export: %w", err)
	}
	defer rows.Close()

	picks := []models.ExportPick{}
	for rows.Next() {
		var p models.ExportPick
		if err := rows.Scan(&p.ItemID, &p.Title, &p.Label, &p.PickedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

// refreshExport recomputes the consolidated document and persists it.
// When there is no activity the stored row is removed.
func (s *Store) refreshExport() error {
	doc, err := s.Consolidated()
	if err == ErrNothingToExport {
		if _, err := s.db.Exec(`DELETE FROM export_doc`); err != nil {
			return fmt.Errorf("failed to clear export document: %w", err)
		}
		return nil
	}
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO export_doc (id, doc_id, payload, generated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			doc_id = EXCLUDED.doc_id,
			payload = EXCLUDED.payload,
			generated_at = EXCLUDED.generated_at
	`, doc.ID, string(payload), doc.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to store export document: %w", err)
	}

	return nil
}

// StoredExport returns the persisted consolidated document, if any.
func (s *Store) StoredExport() ([]byte, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM export_doc WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query export document: %w", err)
	}
	return []byte(payload), true, nil
}
