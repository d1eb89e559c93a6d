// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dealerpress/internal/models"
	"dealerpress/internal/slug"
)

// dealerColumns lists the columns selected in dealer queries.
const dealerColumns = `id, slug, name, hostname, theme_key, locale, brand_overrides, created_at, updated_at`

// DealerStore handles all dealer (tenant) database operations.
type DealerStore struct {
	db *sql.DB
}

// NewDealerStore creates a new DealerStore.
func NewDealerStore(db *sql.DB) *DealerStore {
	return &DealerStore{db: db}
}

// scanDealer scans a dealer row from the result set.
func scanDealer(scanner interface{ Scan(...any) error }) (*models.Dealer, error) {
	var d models.Dealer
	var brand []byte // NULL scans as nil
	err := scanner.Scan(
		&d.ID, &d.Slug, &d.Name, &d.Hostname, &d.ThemeKey, &d.Locale,
		&brand, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.BrandOverrides = brand
	return &d, nil
}

// List returns all dealers ordered by name.
func (s *DealerStore) List() ([]models.Dealer, error) {
	rows, err := s.db.Query(`SELECT ` + dealerColumns + ` FROM dealers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list dealers: %w", err)
	}
	defer rows.Close()

	var items []models.Dealer
	for rows.Next() {
		d, err := scanDealer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dealer: %w", err)
		}
		items = append(items, *d)
	}
	return items, rows.Err()
}

// FindByID retrieves a dealer by its UUID. Returns nil if not found.
func (s *DealerStore) FindByID(id uuid.UUID) (*models.Dealer, error) {
	row := s.db.QueryRow(`SELECT `+dealerColumns+` FROM dealers WHERE id = $1`, id)
	d, err := scanDealer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find dealer by id: %w", err)
	}
	return d, nil
}

// FindByHost retrieves the dealer serving a hostname. Returns nil if no
// dealer claims the host.
func (s *DealerStore) FindByHost(host string) (*models.Dealer, error) {
	row := s.db.QueryRow(`SELECT `+dealerColumns+` FROM dealers WHERE hostname = $1`, strings.ToLower(host))
	d, err := scanDealer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find dealer by host: %w", err)
	}
	return d, nil
}

// FindBySlug retrieves a dealer by its slug. Returns nil if not found.
func (s *DealerStore) FindBySlug(slug string) (*models.Dealer, error) {
	row := s.db.QueryRow(`SELECT `+dealerColumns+` FROM dealers WHERE slug = $1`, slug)
	d, err := scanDealer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find dealer by slug: %w", err)
	}
	return d, nil
}

// Create inserts a new dealer and returns it with generated fields. When no
// slug is provided one is derived from the dealer name.
func (s *DealerStore) Create(d *models.Dealer) (*models.Dealer, error) {
	var brand any
	if len(d.BrandOverrides) > 0 {
		brand = []byte(d.BrandOverrides)
	}
	dealerSlug := d.Slug
	if dealerSlug == "" {
		dealerSlug = slug.Generate(d.Name)
	}
	row := s.db.QueryRow(`
		INSERT INTO dealers (slug, name, hostname, theme_key, locale, brand_overrides)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+dealerColumns,
		dealerSlug, d.Name, strings.ToLower(d.Hostname), d.ThemeKey, d.Locale, brand,
	)
	created, err := scanDealer(row)
	if err != nil {
		return nil, fmt.Errorf("create dealer: %w", err)
	}
	return created, nil
}

// UpdateBrandOverrides replaces a dealer's site-level brand overrides.
func (s *DealerStore) UpdateBrandOverrides(id uuid.UUID, overrides []byte) error {
	var brand any
	if len(overrides) > 0 {
		brand = overrides
	}
	result, err := s.db.Exec(`
		UPDATE dealers SET brand_overrides = $1, updated_at = NOW()
		WHERE id = $2
	`, brand, id)
	if err != nil {
		return fmt.Errorf("update brand overrides: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("dealer not found")
	}
	return nil
}
