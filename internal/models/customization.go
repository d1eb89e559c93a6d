// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CustomizationStatus distinguishes staged from live customization records.
type CustomizationStatus string

const (
	StatusDraft     CustomizationStatus = "DRAFT"
	StatusPublished CustomizationStatus = "PUBLISHED"
)

// Customization is a dealer's persisted override data. At most one DRAFT
// and one PUBLISHED record exist per dealer (unique on dealer_id + status).
// Data is a deep-partial dealer configuration stored as JSONB.
type Customization struct {
	ID        uuid.UUID           `json:"id"`
	DealerID  uuid.UUID           `json:"dealer_id"`
	Version   int                 `json:"version"`
	Status    CustomizationStatus `json:"status"`
	Data      json.RawMessage     `json:"data"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
