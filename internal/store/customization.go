// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"dealerpress/internal/drafts"
	"dealerpress/internal/models"
)

// customizationColumns lists the columns selected in customization queries.
const customizationColumns = `id, dealer_id, version, status, data, created_at, updated_at`

// CustomizationStore persists dealer customization records in PostgreSQL.
// The schema enforces at most one DRAFT and one PUBLISHED row per dealer
// via a unique index on (dealer_id, status).
type CustomizationStore struct {
	db *sql.DB
}

// NewCustomizationStore creates a new CustomizationStore.
func NewCustomizationStore(db *sql.DB) *CustomizationStore {
	return &CustomizationStore{db: db}
}

// scanCustomization scans a customization row from the result set.
func scanCustomization(scanner interface{ Scan(...any) error }) (*models.Customization, error) {
	var c models.Customization
	var data []byte
	err := scanner.Scan(&c.ID, &c.DealerID, &c.Version, &c.Status, &data, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Data = data
	return &c, nil
}

// Find returns the record for (dealer, status), or nil when none exists.
func (s *CustomizationStore) Find(dealerID uuid.UUID, status models.CustomizationStatus) (*models.Customization, error) {
	row := s.db.QueryRow(`
		SELECT `+customizationColumns+`
		FROM customizations
		WHERE dealer_id = $1 AND status = $2
	`, dealerID, status)
	c, err := scanCustomization(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customization: %w", err)
	}
	return c, nil
}

// SaveDraft upserts the dealer's DRAFT record with the given data. An
// existing draft keeps its row and gets its version bumped.
func (s *CustomizationStore) SaveDraft(dealerID uuid.UUID, data json.RawMessage) (*models.Customization, error) {
	row := s.db.QueryRow(`
		INSERT INTO customizations (dealer_id, version, status, data)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (dealer_id, status)
		DO UPDATE SET data = EXCLUDED.data,
			version = customizations.version + 1,
			updated_at = NOW()
		RETURNING `+customizationColumns,
		dealerID, models.StatusDraft, []byte(data),
	)
	c, err := scanCustomization(row)
	if err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return c, nil
}

// ResetDraft upserts the dealer's DRAFT record with an empty data object.
// The row is kept rather than deleted, so subsequent edits merge onto {}.
func (s *CustomizationStore) ResetDraft(dealerID uuid.UUID) (*models.Customization, error) {
	row := s.db.QueryRow(`
		INSERT INTO customizations (dealer_id, version, status, data)
		VALUES ($1, 1, $2, '{}')
		ON CONFLICT (dealer_id, status)
		DO UPDATE SET data = '{}',
			version = customizations.version + 1,
			updated_at = NOW()
		RETURNING `+customizationColumns,
		dealerID, models.StatusDraft,
	)
	c, err := scanCustomization(row)
	if err != nil {
		return nil, fmt.Errorf("reset draft: %w", err)
	}
	return c, nil
}

// Publish atomically promotes the dealer's DRAFT to PUBLISHED: the old
// PUBLISHED row is deleted, a new one is created from the draft's data
// carrying the draft's version, and the draft row is removed. All three
// steps commit together or not at all — a partial swap would leave the
// site with neither record.
//
// The draft row is locked FOR UPDATE so concurrent publishes for the same
// dealer serialize instead of interleaving their delete/insert steps.
func (s *CustomizationStore) Publish(dealerID uuid.UUID) (*models.Customization, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		SELECT `+customizationColumns+`
		FROM customizations
		WHERE dealer_id = $1 AND status = $2
		FOR UPDATE
	`, dealerID, models.StatusDraft)
	draft, err := scanCustomization(row)
	if err == sql.ErrNoRows {
		return nil, drafts.ErrNoDraft
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	if _, err := tx.Exec(`
		DELETE FROM customizations WHERE dealer_id = $1 AND status = $2
	`, dealerID, models.StatusPublished); err != nil {
		return nil, fmt.Errorf("delete old published: %w", err)
	}

	row = tx.QueryRow(`
		INSERT INTO customizations (dealer_id, version, status, data)
		VALUES ($1, $2, $3, $4)
		RETURNING `+customizationColumns,
		dealerID, draft.Version, models.StatusPublished, []byte(draft.Data),
	)
	published, err := scanCustomization(row)
	if err != nil {
		return nil, fmt.Errorf("create published: %w", err)
	}

	if _, err := tx.Exec(`
		DELETE FROM customizations WHERE id = $1
	`, draft.ID); err != nil {
		return nil, fmt.Errorf("delete draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit publish: %w", err)
	}
	return published, nil
}
