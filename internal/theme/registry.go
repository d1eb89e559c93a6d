// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"log/slog"
)

// Registry holds the process's theme descriptors and per-dealer override
// modules. It is an explicit state object passed to whatever needs theme
// resolution, so tests can build isolated instances. Registration happens
// during startup; after that the registry is read-only and safe for
// concurrent use.
type Registry struct {
	themes    map[string]*Descriptor
	overrides map[string]*Overrides // keyed by dealer slug
}

// NewRegistry returns an empty theme registry.
func NewRegistry() *Registry {
	return &Registry{
		themes:    make(map[string]*Descriptor),
		overrides: make(map[string]*Overrides),
	}
}

// Register adds a theme descriptor. A theme declaring itself as its own
// parent is rejected immediately; longer cycles are caught at resolution
// time where the full chain can be reported.
func (r *Registry) Register(d *Descriptor) error {
	if d.Key == "" {
		return fmt.Errorf("register theme: empty key")
	}
	if d.Extends == d.Key {
		return &SelfReferenceError{Key: d.Key}
	}
	if _, exists := r.themes[d.Key]; exists {
		return fmt.Errorf("register theme: duplicate key %q", d.Key)
	}
	r.themes[d.Key] = d
	slog.Debug("theme registered", "key", d.Key, "extends", d.Extends)
	return nil
}

// RegisterOverrides installs a dealer's override module.
func (r *Registry) RegisterOverrides(dealerSlug string, ov *Overrides) {
	r.overrides[dealerSlug] = ov
	slog.Debug("dealer theme overrides registered", "dealer", dealerSlug)
}

// OverridesFor returns the override module registered for a dealer slug,
// or nil when the dealer has none.
func (r *Registry) OverridesFor(dealerSlug string) *Overrides {
	return r.overrides[dealerSlug]
}

// Lookup returns the descriptor for a key, or nil when unregistered.
func (r *Registry) Lookup(key string) *Descriptor {
	return r.themes[key]
}

// Len returns the number of registered themes. Exposed for startup logging.
func (r *Registry) Len() int {
	return len(r.themes)
}
