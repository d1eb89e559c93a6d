// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// config.go provides a Valkey-backed cache for resolved dealer
// configurations. When the compositor computes a validated config, the
// JSON payload is stored here so subsequent requests skip the store reads
// and the merge pipeline entirely. Entries are keyed by dealer and mode
// (published vs preview); draft and publish writes invalidate both modes.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// configKeyPrefix is the Valkey key prefix for cached configs.
	configKeyPrefix = "config:"

	// DefaultConfigTTL is how long a resolved config stays cached.
	DefaultConfigTTL = 5 * time.Minute
)

// ConfigCache manages resolved-config caching in Valkey. All operations
// are best-effort: failures are logged and surface as cache misses.
type ConfigCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewConfigCache creates a new config cache backed by the given Valkey client.
func NewConfigCache(client *redis.Client, ttl time.Duration) *ConfigCache {
	if ttl == 0 {
		ttl = DefaultConfigTTL
	}
	return &ConfigCache{client: client, ttl: ttl}
}

// configKey builds the cache key for a dealer and mode.
func configKey(dealerID uuid.UUID, preview bool) string {
	mode := "published"
	if preview {
		mode = "preview"
	}
	return fmt.Sprintf("%s%s:%s", configKeyPrefix, dealerID, mode)
}

// Get retrieves a cached config payload. Returns false on miss.
func (cc *ConfigCache) Get(ctx context.Context, dealerID uuid.UUID, preview bool) ([]byte, bool) {
	key := configKey(dealerID, preview)
	val, err := cc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("config cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("config cache hit", "key", key)
	return val, true
}

// Set stores a resolved config payload with the configured TTL.
func (cc *ConfigCache) Set(ctx context.Context, dealerID uuid.UUID, preview bool, payload []byte) {
	key := configKey(dealerID, preview)
	if err := cc.client.Set(ctx, key, payload, cc.ttl).Err(); err != nil {
		slog.Warn("config cache set error", "key", key, "error", err)
	}
}

// Invalidate removes both the published and preview entries for a dealer.
// Called after every draft or publish write.
func (cc *ConfigCache) Invalidate(ctx context.Context, dealerID uuid.UUID) {
	keys := []string{
		configKey(dealerID, false),
		configKey(dealerID, true),
	}
	if err := cc.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("config cache invalidate error", "dealer", dealerID, "error", err)
		return
	}
	slog.Debug("config cache invalidated", "dealer", dealerID)
}

// InvalidateAll removes all cached configs by scanning for the prefix.
// Used at startup after theme registration changes, since any dealer's
// resolved config could be affected.
func (cc *ConfigCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := cc.client.Scan(ctx, cursor, configKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("config cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := cc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("config cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("config cache fully cleared", "deleted", deleted)
	}
}
