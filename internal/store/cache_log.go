// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// cache_log.go records config-cache invalidation events in the database
// for audit and debugging. Each entry captures which dealer was
// invalidated, when, and why (draft_update/draft_reset/publish).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// CacheLogStore handles cache invalidation log operations.
type CacheLogStore struct {
	db *sql.DB
}

// NewCacheLogStore creates a new CacheLogStore.
func NewCacheLogStore(db *sql.DB) *CacheLogStore {
	return &CacheLogStore{db: db}
}

// CacheLogEntry represents a single cache invalidation event.
type CacheLogEntry struct {
	ID            int64     `json:"id"`
	DealerID      uuid.UUID `json:"dealer_id"`
	Action        string    `json:"action"`
	InvalidatedAt time.Time `json:"invalidated_at"`
}

// Log records a cache invalidation event.
func (s *CacheLogStore) Log(dealerID uuid.UUID, action string) {
	_, err := s.db.Exec(`
		INSERT INTO cache_invalidation_log (dealer_id, action)
		VALUES ($1, $2)
	`, dealerID, action)
	if err != nil {
		// Log but don't fail — cache logging is best-effort.
		slog.Warn("failed to log cache invalidation",
			"dealer", dealerID,
			"action", action,
			"error", err,
		)
		return
	}
	slog.Debug("cache invalidation logged",
		"dealer", dealerID,
		"action", action,
	)
}

// Invalidate records a workflow-triggered invalidation. Satisfies the
// drafts workflow's Invalidator so audit logging rides the same hook as
// the cache itself.
func (s *CacheLogStore) Invalidate(_ context.Context, dealerID uuid.UUID) {
	s.Log(dealerID, "customization_write")
}

// RecentEntries returns the most recent cache invalidation events for
// debugging. Limited to the specified count.
func (s *CacheLogStore) RecentEntries(limit int) ([]CacheLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, dealer_id, action, invalidated_at
		FROM cache_invalidation_log
		ORDER BY invalidated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query cache log: %w", err)
	}
	defer rows.Close()

	var entries []CacheLogEntry
	for rows.Next() {
		var e CacheLogEntry
		if err := rows.Scan(&e.ID, &e.DealerID, &e.Action, &e.InvalidatedAt); err != nil {
			return nil, fmt.Errorf("scan cache log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
