// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package composer computes the effective site configuration for a dealer
// by layering override sources in fixed precedence order: global defaults,
// per-theme defaults, the PUBLISHED customization, the DRAFT customization
// (preview mode only), and site-level brand overrides.
package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"dealerpress/internal/dealerconfig"
	"dealerpress/internal/models"
)

// DealerDirectory looks up dealer identity for a resolution call.
type DealerDirectory interface {
	FindByID(id uuid.UUID) (*models.Dealer, error)
}

// CustomizationReader fetches persisted customization records.
type CustomizationReader interface {
	Find(dealerID uuid.UUID, status models.CustomizationStatus) (*models.Customization, error)
}

// ConfigCache stores validated resolved configs keyed by dealer and mode.
// Implementations are best-effort: a miss or failure just recomputes.
type ConfigCache interface {
	Get(ctx context.Context, dealerID uuid.UUID, preview bool) ([]byte, bool)
	Set(ctx context.Context, dealerID uuid.UUID, preview bool, payload []byte)
}

// DealerNotFoundError reports a resolution call for a dealer id that does
// not exist.
type DealerNotFoundError struct {
	DealerID uuid.UUID
}

func (e *DealerNotFoundError) Error() string {
	return fmt.Sprintf("dealer %s not found", e.DealerID)
}

// Options control a single resolution call.
type Options struct {
	// Preview includes the DRAFT customization layer.
	Preview bool
}

// Composer orchestrates the layering pipeline. The layer order is the core
// correctness contract and never varies per call.
type Composer struct {
	dealers        DealerDirectory
	customizations CustomizationReader
	cache          ConfigCache // nil disables caching
}

// New creates a Composer. Pass a nil cache to disable config caching.
func New(dealers DealerDirectory, customizations CustomizationReader, cache ConfigCache) *Composer {
	return &Composer{
		dealers:        dealers,
		customizations: customizations,
		cache:          cache,
	}
}

// Resolve computes the validated effective configuration for a dealer.
//
// A broken customization record must never take a live site down: if the
// merged result fails schema validation, the global defaults are returned
// and the failure is logged. Store read failures degrade the same way.
// Only an unresolvable dealer identity is a hard error.
func (c *Composer) Resolve(ctx context.Context, dealerID uuid.UUID, opts Options) (*dealerconfig.Config, error) {
	dealer, err := c.dealers.FindByID(dealerID)
	if err != nil {
		return nil, fmt.Errorf("look up dealer %s: %w", dealerID, err)
	}
	if dealer == nil {
		return nil, &DealerNotFoundError{DealerID: dealerID}
	}

	if c.cache != nil {
		if payload, ok := c.cache.Get(ctx, dealerID, opts.Preview); ok {
			var cfg dealerconfig.Config
			if err := json.Unmarshal(payload, &cfg); err == nil {
				return &cfg, nil
			}
			slog.Warn("cached config unreadable, recomputing", "dealer", dealerID, "error", err)
		}
	}

	cfg := c.compose(dealer, opts)

	if c.cache != nil {
		if payload, err := json.Marshal(cfg); err == nil {
			c.cache.Set(ctx, dealerID, opts.Preview, payload)
		}
	}
	return cfg, nil
}

// compose runs the merge pipeline and validates the result, falling back to
// defaults on any data-integrity problem.
func (c *Composer) compose(dealer *models.Dealer, opts Options) *dealerconfig.Config {
	acc := dealerconfig.DefaultMap()

	// Layer 2: legacy per-theme defaults (colors/typography/tokens only).
	if td, ok := themeDefaults[dealer.ThemeKey]; ok {
		acc = dealerconfig.Merge(acc, td)
	}

	// The dealer record is authoritative for the theme identity.
	if dealer.ThemeKey != "" {
		acc = dealerconfig.Merge(acc, map[string]any{
			"theme": map[string]any{"key": dealer.ThemeKey},
		})
	}

	// Layer 3: PUBLISHED customization — applied in every mode.
	pub, err := c.fetchLayer(dealer.ID, models.StatusPublished)
	if err != nil {
		slog.Error("published customization unusable, serving defaults",
			"dealer", dealer.ID, "error", err)
		return dealerconfig.Default()
	}
	if pub != nil {
		acc = dealerconfig.Merge(acc, pub)
	}

	// Layer 4: DRAFT customization — preview mode only.
	if opts.Preview {
		draft, err := c.fetchLayer(dealer.ID, models.StatusDraft)
		if err != nil {
			slog.Error("draft customization unusable, serving defaults",
				"dealer", dealer.ID, "error", err)
			return dealerconfig.Default()
		}
		if draft != nil {
			acc = dealerconfig.Merge(acc, draft)
		}
	}

	// Layer 5: site-level brand overrides from the dealer record.
	if len(dealer.BrandOverrides) > 0 {
		brand, err := dealerconfig.DecodeData(dealer.BrandOverrides)
		if err != nil {
			slog.Error("brand overrides unusable, serving defaults",
				"dealer", dealer.ID, "error", err)
			return dealerconfig.Default()
		}
		acc = dealerconfig.Merge(acc, brand)
	}

	cfg, err := dealerconfig.Validate(acc)
	if err != nil {
		slog.Error("merged config failed validation, serving defaults",
			"dealer", dealer.ID, "error", err)
		return dealerconfig.Default()
	}
	return cfg
}

// fetchLayer reads one customization record and decodes its data. A missing
// record returns (nil, nil); a read or decode failure returns the error for
// the caller's degraded path.
func (c *Composer) fetchLayer(dealerID uuid.UUID, status models.CustomizationStatus) (map[string]any, error) {
	rec, err := c.customizations.Find(dealerID, status)
	if err != nil {
		return nil, fmt.Errorf("read %s customization: %w", status, err)
	}
	if rec == nil || len(rec.Data) == 0 {
		return nil, nil
	}
	m, err := dealerconfig.DecodeData(rec.Data)
	if err != nil {
		return nil, err
	}
	return m, nil
}
