// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for dealer sites. Handlers
// are grouped by concern (public, admin) and receive their dependencies
// through the handler struct. Every request is tenant-scoped: the Host
// header picks the dealer whose configuration is served.
package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dealerpress/internal/components"
	"dealerpress/internal/composer"
	"dealerpress/internal/dealerconfig"
	"dealerpress/internal/tenant"
)

// Public groups the handlers serving dealer-facing configuration output:
// the resolved config JSON, the design-variable stylesheet, and rendered
// components.
type Public struct {
	tenants    *tenant.Resolver
	composer   *composer.Composer
	components *components.Resolver
}

// NewPublic creates a new Public handler group.
func NewPublic(tenants *tenant.Resolver, comp *composer.Composer, resolver *components.Resolver) *Public {
	return &Public{
		tenants:    tenants,
		composer:   comp,
		components: resolver,
	}
}

// configResponse is the payload of GET /api/config.
type configResponse struct {
	Dealer  string               `json:"dealer"`
	Theme   string               `json:"theme"`
	Preview bool                 `json:"preview"`
	Config  *dealerconfig.Config `json:"config"`
}

// Config serves the dealer's effective configuration. With ?preview=1 the
// DRAFT customization layer is included, so admins see staged changes.
func (p *Public) Config(w http.ResponseWriter, r *http.Request) {
	id, ok := p.resolveTenant(w, r)
	if !ok {
		return
	}

	preview := r.URL.Query().Get("preview") == "1"
	cfg, err := p.composer.Resolve(r.Context(), id.DealerID, composer.Options{Preview: preview})
	if err != nil {
		var notFound *composer.DealerNotFoundError
		if errors.As(err, &notFound) {
			jsonError(w, http.StatusNotFound, "dealer not found")
			return
		}
		slog.Error("resolve config failed", "error", err, "dealer", id.Slug)
		jsonError(w, http.StatusInternalServerError, "configuration unavailable")
		return
	}

	if preview {
		// Preview output reflects in-progress edits; never let a shared
		// cache serve it to visitors.
		w.Header().Set("Cache-Control", "no-store")
	}

	writeJSON(w, http.StatusOK, configResponse{
		Dealer:  id.Slug,
		Theme:   cfg.Theme.Key,
		Preview: preview,
		Config:  cfg,
	})
}

// Stylesheet serves the dealer's design variables as a CSS custom-property
// block, ready for a <link rel="stylesheet" href="/theme.css">.
func (p *Public) Stylesheet(w http.ResponseWriter, r *http.Request) {
	id, ok := p.resolveTenant(w, r)
	if !ok {
		return
	}

	cfg, err := p.composer.Resolve(r.Context(), id.DealerID, composer.Options{})
	if err != nil {
		slog.Error("resolve config for stylesheet failed", "error", err, "dealer", id.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(dealerconfig.CSS(cfg)))
}

// Component renders a named component for the dealer's theme. Resolution
// never fails: an unknown name renders a placeholder marker so the page
// layout survives.
func (p *Public) Component(w http.ResponseWriter, r *http.Request) {
	id, ok := p.resolveTenant(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	comp := p.components.Resolve(name, id)

	var buf bytes.Buffer
	if err := comp.Render(&buf, map[string]any{"dealer": id.Slug}); err != nil {
		slog.Error("component render failed", "error", err, "component", name, "dealer", id.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// resolveTenant maps the request host to a dealer, writing a 404 when no
// dealer claims the hostname.
func (p *Public) resolveTenant(w http.ResponseWriter, r *http.Request) (tenant.Identity, bool) {
	id, err := p.tenants.Resolve(r)
	if err != nil {
		var noTenant *tenant.NoTenantResolvedError
		if errors.As(err, &noTenant) {
			jsonError(w, http.StatusNotFound, "no dealer site at this hostname")
			return tenant.Identity{}, false
		}
		slog.Error("tenant resolution failed", "error", err, "host", r.Host)
		jsonError(w, http.StatusInternalServerError, "tenant resolution failed")
		return tenant.Identity{}, false
	}
	return id, true
}
