// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, configKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestConfigCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewConfigCache(client, 1*time.Minute)
	ctx := context.Background()
	dealer := uuid.New()

	if _, ok := cc.Get(ctx, dealer, false); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	cc.Set(ctx, dealer, false, []byte(`{"theme":{"key":"base"}}`))
	got, ok := cc.Get(ctx, dealer, false)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != `{"theme":{"key":"base"}}` {
		t.Errorf("payload = %s", got)
	}

	// Preview mode is a separate entry.
	if _, ok := cc.Get(ctx, dealer, true); ok {
		t.Error("preview hit from published entry")
	}
}

func TestConfigCacheInvalidateBothModes(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewConfigCache(client, 1*time.Minute)
	ctx := context.Background()
	dealer := uuid.New()
	other := uuid.New()

	cc.Set(ctx, dealer, false, []byte(`{}`))
	cc.Set(ctx, dealer, true, []byte(`{}`))
	cc.Set(ctx, other, false, []byte(`{}`))

	cc.Invalidate(ctx, dealer)

	if _, ok := cc.Get(ctx, dealer, false); ok {
		t.Error("published entry survived invalidation")
	}
	if _, ok := cc.Get(ctx, dealer, true); ok {
		t.Error("preview entry survived invalidation")
	}
	if _, ok := cc.Get(ctx, other, false); !ok {
		t.Error("invalidation removed another dealer's entry")
	}
}

func TestConfigCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewConfigCache(client, 1*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		cc.Set(ctx, uuid.New(), false, []byte(`{}`))
	}
	cc.InvalidateAll(ctx)

	keys, _ := client.Keys(ctx, configKeyPrefix+"*").Result()
	if len(keys) != 0 {
		t.Errorf("%d config keys survived InvalidateAll", len(keys))
	}
}

func TestConfigCacheExpiry(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewConfigCache(client, 1*time.Second)
	ctx := context.Background()
	dealer := uuid.New()

	cc.Set(ctx, dealer, false, []byte(`{}`))
	time.Sleep(1500 * time.Millisecond)

	if _, ok := cc.Get(ctx, dealer, false); ok {
		t.Error("entry survived past its TTL")
	}
}
