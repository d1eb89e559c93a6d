package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data.
// It creates a pair of sample dealers, one of which carries a published
// customization, so a fresh instance serves distinguishable sites.
func Seed(db *sql.DB) error {
	// Check if any dealers exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM dealers").Scan(&count); err != nil {
		return fmt.Errorf("seed check dealers: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var prestigeID string
	err := db.QueryRow(`
		INSERT INTO dealers (slug, name, hostname, theme_key, locale)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, "prestige-motors", "Prestige Motors", "prestige.dealerpress.local", "midnight", "en-US").Scan(&prestigeID)
	if err != nil {
		return fmt.Errorf("seed insert dealer: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO dealers (slug, name, hostname, theme_key, locale, brand_overrides)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, "valley-auto", "Valley Auto Group", "valley.dealerpress.local", "base", "en-US",
		`{"theme": {"colors": {"primary": "#14532d"}}}`)
	if err != nil {
		return fmt.Errorf("seed insert dealer: %w", err)
	}

	// Give the first dealer a published customization so its site differs
	// from bare theme defaults.
	_, err = db.Exec(`
		INSERT INTO customizations (dealer_id, version, status, data)
		VALUES ($1, 1, 'PUBLISHED', $2)
	`, prestigeID, `{"sections": {"showTestimonials": false}, "tokens": {"borderRadius": "12px"}}`)
	if err != nil {
		return fmt.Errorf("seed insert customization: %w", err)
	}

	slog.Info("database seeded with sample dealers",
		"dealers", 2,
		"hostnames", "prestige.dealerpress.local, valley.dealerpress.local",
	)

	return nil
}
