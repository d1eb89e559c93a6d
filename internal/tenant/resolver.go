// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package tenant maps incoming requests to the dealer (tenant) they belong
// to, based on the request hostname.
package tenant

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"dealerpress/internal/models"
)

// Identity is the resolved tenant of a request: everything the config
// compositor and component resolver need to scope their work.
type Identity struct {
	DealerID uuid.UUID
	Slug     string
	ThemeKey string
	Locale   string
}

// DealerSource is the lookup the resolver needs from the dealer store.
type DealerSource interface {
	FindByHost(host string) (*models.Dealer, error)
}

// NoTenantResolvedError reports a request whose hostname maps to no dealer.
type NoTenantResolvedError struct {
	Host string
}

func (e *NoTenantResolvedError) Error() string {
	return fmt.Sprintf("no tenant resolved for host %q", e.Host)
}

// Resolver identifies tenants from request hostnames.
type Resolver struct {
	dealers DealerSource
}

// NewResolver creates a tenant resolver backed by the given dealer source.
func NewResolver(dealers DealerSource) *Resolver {
	return &Resolver{dealers: dealers}
}

// Resolve identifies the dealer serving the request. The port is stripped
// from the Host header before lookup.
func (r *Resolver) Resolve(req *http.Request) (Identity, error) {
	host := normalizeHost(req.Host)
	if host == "" {
		return Identity{}, &NoTenantResolvedError{Host: req.Host}
	}

	dealer, err := r.dealers.FindByHost(host)
	if err != nil {
		return Identity{}, fmt.Errorf("resolve tenant for %q: %w", host, err)
	}
	if dealer == nil {
		return Identity{}, &NoTenantResolvedError{Host: host}
	}

	return Identity{
		DealerID: dealer.ID,
		Slug:     dealer.Slug,
		ThemeKey: dealer.ThemeKey,
		Locale:   dealer.Locale,
	}, nil
}

// normalizeHost lowercases the host and strips any port suffix.
func normalizeHost(host string) string {
	host = strings.TrimSpace(strings.ToLower(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
