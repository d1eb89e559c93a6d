// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package components picks the most specific implementation of a logical
// component for a tenant: dealer override, then active-theme override, then
// the base theme, then a visible placeholder. Missing components degrade
// gracefully rather than breaking the page.
package components

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"dealerpress/internal/tenant"
	"dealerpress/internal/theme"
)

// memoKey uniquely identifies a resolution result. Component code bindings
// are deploy-time concerns, so entries live for the process lifetime and
// are never invalidated by customization changes.
type memoKey struct {
	dealerID uuid.UUID
	themeKey string
	name     string
}

// Resolver resolves logical component names against a theme registry,
// memoizing results per (dealer, theme, component).
type Resolver struct {
	registry *theme.Registry

	mu   sync.RWMutex
	memo map[memoKey]theme.Component
}

// NewResolver creates a component resolver over the given registry.
func NewResolver(registry *theme.Registry) *Resolver {
	return &Resolver{
		registry: registry,
		memo:     make(map[memoKey]theme.Component),
	}
}

// Resolve returns the most specific implementation of name for the tenant.
// It never fails: when no scope provides the component, a placeholder that
// renders a visible "missing component" marker is returned. A factory load
// error counts as "not found at this level" and resolution continues.
//
// Safe for concurrent use; two concurrent resolutions for the same key may
// both compute the value and the last insert wins harmlessly, since results
// are pure functions of fixed registry state.
func (r *Resolver) Resolve(name string, id tenant.Identity) theme.Component {
	key := memoKey{dealerID: id.DealerID, themeKey: id.ThemeKey, name: name}

	r.mu.RLock()
	cached := r.memo[key]
	r.mu.RUnlock()
	if cached != nil {
		return cached
	}

	comp := r.lookup(name, id)

	r.mu.Lock()
	r.memo[key] = comp
	r.mu.Unlock()
	return comp
}

// lookup walks the precedence chain without touching the memo.
func (r *Resolver) lookup(name string, id tenant.Identity) theme.Component {
	// 1. Dealer-specific override.
	if ov := r.registry.OverridesFor(id.Slug); ov != nil {
		if comp := load(ov.Components[name], name, "dealer"); comp != nil {
			return comp
		}
	}

	// 2 & 3. Active theme chain, which folds theme-specific overrides over
	// ancestor implementations.
	if resolved, err := r.registry.Resolve(id.ThemeKey, nil); err == nil {
		if comp := load(resolved.Components[name], name, "theme"); comp != nil {
			return comp
		}
	} else {
		slog.Warn("component lookup: theme resolution failed",
			"theme", id.ThemeKey, "component", name, "error", err)
	}

	// 3b. Base theme directly, in case the active theme's chain is broken
	// or simply lacks the component.
	if id.ThemeKey != theme.DefaultKey {
		if resolved, err := r.registry.Resolve(theme.DefaultKey, nil); err == nil {
			if comp := load(resolved.Components[name], name, "base"); comp != nil {
				return comp
			}
		}
	}

	// 4. Generic fallback placeholder.
	slog.Debug("component not found, using placeholder",
		"component", name, "dealer", id.Slug, "theme", id.ThemeKey)
	return Missing(name)
}

// load runs a factory, treating a nil factory or a load error as a miss.
func load(f theme.Factory, name, scope string) theme.Component {
	if f == nil {
		return nil
	}
	comp, err := f()
	if err != nil {
		slog.Debug("component load failed, trying next scope",
			"component", name, "scope", scope, "error", err)
		return nil
	}
	return comp
}

// missingComponent renders a visible marker instead of failing the page.
type missingComponent struct {
	name string
}

func (m *missingComponent) Render(w io.Writer, _ map[string]any) error {
	safe := template.HTMLEscapeString(m.name)
	_, err := fmt.Fprintf(w,
		`<div class="missing-component" data-component="%s">Component %q is not available</div>`,
		safe, safe)
	return err
}

// Missing returns the placeholder implementation for a component name.
func Missing(name string) theme.Component {
	return &missingComponent{name: name}
}
