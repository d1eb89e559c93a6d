// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Dealer is one tenant of the platform: a dealership site with its own
// hostname, theme, and customization records.
type Dealer struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Hostname string    `json:"hostname"`
	ThemeKey string    `json:"theme_key"`
	Locale   string    `json:"locale"`

	// BrandOverrides is an optional site-level partial config applied as
	// the last resolution layer (hostname-scoped branding).
	BrandOverrides json.RawMessage `json:"brand_overrides,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
