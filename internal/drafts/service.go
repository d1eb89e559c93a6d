// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package drafts implements the customization staging workflow: admin edits
// accumulate in a dealer's DRAFT record and a publish atomically promotes
// the DRAFT to PUBLISHED.
package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"dealerpress/internal/dealerconfig"
	"dealerpress/internal/models"
)

// ErrNoDraft is returned by Publish when the dealer has nothing staged.
var ErrNoDraft = errors.New("no draft to publish")

// ErrInvalidPatch is returned by UpsertDraft when the submitted patch fails
// schema validation. The stored draft is left untouched.
var ErrInvalidPatch = errors.New("invalid draft patch")

// Store is the persistence boundary for customization records. The postgres
// implementation lives in internal/store; tests use an in-memory one.
type Store interface {
	// Find returns the record for (dealer, status), or nil when absent.
	Find(dealerID uuid.UUID, status models.CustomizationStatus) (*models.Customization, error)

	// SaveDraft upserts the dealer's DRAFT record with the given data,
	// bumping its version.
	SaveDraft(dealerID uuid.UUID, data json.RawMessage) (*models.Customization, error)

	// ResetDraft upserts the dealer's DRAFT record with empty data. The
	// row is kept, not deleted.
	ResetDraft(dealerID uuid.UUID) (*models.Customization, error)

	// Publish atomically replaces the PUBLISHED record with the DRAFT's
	// data and removes the DRAFT. Returns ErrNoDraft when none exists.
	// Concurrent publishes for the same dealer must serialize.
	Publish(dealerID uuid.UUID) (*models.Customization, error)
}

// Invalidator drops cached resolved configs for a dealer. Best-effort:
// implementations log failures instead of returning them.
type Invalidator interface {
	Invalidate(ctx context.Context, dealerID uuid.UUID)
}

// Service is the draft/publish workflow over a Store. Write failures are
// always surfaced to the caller — an admin must know whether their change
// took effect. Only cache invalidation is fire-and-forget.
type Service struct {
	store        Store
	invalidators []Invalidator
}

// NewService creates the workflow service. Invalidators run after every
// successful write.
func NewService(store Store, invalidators ...Invalidator) *Service {
	return &Service{store: store, invalidators: invalidators}
}

// UpsertDraft validates an admin patch and merges it into the dealer's
// draft. The merge base is the existing DRAFT's data when one exists;
// otherwise the PUBLISHED data, or an empty object for a brand-new dealer.
// Note the asymmetry this preserves: after ResetDraft an (empty) DRAFT row
// exists, so later edits merge onto {} rather than onto PUBLISHED.
func (s *Service) UpsertDraft(ctx context.Context, dealerID uuid.UUID, patch json.RawMessage) (*models.Customization, error) {
	if err := dealerconfig.ValidatePartial(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	base, err := s.mergeBase(dealerID)
	if err != nil {
		return nil, err
	}
	patchMap, err := dealerconfig.DecodeData(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	merged := dealerconfig.Merge(base, patchMap)
	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode draft data: %w", err)
	}

	rec, err := s.store.SaveDraft(dealerID, data)
	if err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	slog.Info("draft updated", "dealer", dealerID, "version", rec.Version)
	s.invalidate(ctx, dealerID)
	return rec, nil
}

// GetDraft returns the dealer's DRAFT record, or nil when none exists.
func (s *Service) GetDraft(dealerID uuid.UUID) (*models.Customization, error) {
	rec, err := s.store.Find(dealerID, models.StatusDraft)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return rec, nil
}

// ResetDraft clears the dealer's pending changes by overwriting the DRAFT's
// data with an empty object. The row itself is kept.
func (s *Service) ResetDraft(ctx context.Context, dealerID uuid.UUID) (*models.Customization, error) {
	rec, err := s.store.ResetDraft(dealerID)
	if err != nil {
		return nil, fmt.Errorf("reset draft: %w", err)
	}

	slog.Info("draft reset", "dealer", dealerID)
	s.invalidate(ctx, dealerID)
	return rec, nil
}

// Publish promotes the dealer's DRAFT to PUBLISHED. The store performs the
// swap in a single transaction; on success all cached configs for the
// dealer are invalidated. Returns ErrNoDraft when nothing is staged, with
// any existing PUBLISHED record left untouched.
func (s *Service) Publish(ctx context.Context, dealerID uuid.UUID) (*models.Customization, error) {
	rec, err := s.store.Publish(dealerID)
	if err != nil {
		if errors.Is(err, ErrNoDraft) {
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("publish: %w", err)
	}

	slog.Info("customization published", "dealer", dealerID, "version", rec.Version)
	s.invalidate(ctx, dealerID)
	return rec, nil
}

// mergeBase picks the map a draft patch merges onto.
func (s *Service) mergeBase(dealerID uuid.UUID) (map[string]any, error) {
	draft, err := s.store.Find(dealerID, models.StatusDraft)
	if err != nil {
		return nil, fmt.Errorf("load draft base: %w", err)
	}
	if draft != nil {
		base, err := dealerconfig.DecodeData(draft.Data)
		if err != nil {
			// A draft we cannot decode should not block the admin; start
			// the patch from scratch and log loudly.
			slog.Error("existing draft data unreadable, starting fresh",
				"dealer", dealerID, "error", err)
			return map[string]any{}, nil
		}
		return base, nil
	}

	published, err := s.store.Find(dealerID, models.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("load published base: %w", err)
	}
	if published != nil {
		base, err := dealerconfig.DecodeData(published.Data)
		if err != nil {
			slog.Error("published data unreadable, starting fresh",
				"dealer", dealerID, "error", err)
			return map[string]any{}, nil
		}
		return base, nil
	}
	return map[string]any{}, nil
}

// invalidate runs every registered invalidator.
func (s *Service) invalidate(ctx context.Context, dealerID uuid.UUID) {
	for _, inv := range s.invalidators {
		inv.Invalidate(ctx, dealerID)
	}
}
