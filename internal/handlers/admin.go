// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dealerpress/internal/drafts"
	"dealerpress/internal/models"
	"dealerpress/internal/tenant"
)

// maxDraftBodyLen caps the size of an admin draft patch. Configurations are
// small; anything near this limit is malformed or malicious.
const maxDraftBodyLen = 256 * 1024

// Admin groups the JSON API handlers for the customization workflow. Like
// the public handlers they are tenant-scoped by hostname, so an admin edits
// the dealer whose site they are on.
type Admin struct {
	tenants *tenant.Resolver
	drafts  *drafts.Service
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(tenants *tenant.Resolver, svc *drafts.Service) *Admin {
	return &Admin{tenants: tenants, drafts: svc}
}

// draftResponse is the admin API view of a customization record.
type draftResponse struct {
	DealerID  string          `json:"dealer_id"`
	Version   int             `json:"version"`
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toDraftResponse(rec *models.Customization) draftResponse {
	return draftResponse{
		DealerID:  rec.DealerID.String(),
		Version:   rec.Version,
		Status:    string(rec.Status),
		Data:      rec.Data,
		UpdatedAt: rec.UpdatedAt,
	}
}

// DraftGet returns the dealer's current draft, or 404 when nothing is staged.
func (a *Admin) DraftGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.resolveTenant(w, r)
	if !ok {
		return
	}

	rec, err := a.drafts.GetDraft(id.DealerID)
	if err != nil {
		slog.Error("get draft failed", "error", err, "dealer", id.Slug)
		jsonError(w, http.StatusInternalServerError, "could not load draft")
		return
	}
	if rec == nil {
		jsonError(w, http.StatusNotFound, "no draft exists")
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

// DraftUpsert merges a JSON patch into the dealer's draft. An invalid patch
// is rejected with 422 and leaves the stored draft untouched.
func (a *Admin) DraftUpsert(w http.ResponseWriter, r *http.Request) {
	id, ok := a.resolveTenant(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDraftBodyLen+1))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	if len(body) > maxDraftBodyLen {
		jsonError(w, http.StatusRequestEntityTooLarge, "draft patch too large")
		return
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		jsonError(w, http.StatusBadRequest, "empty request body")
		return
	}

	rec, err := a.drafts.UpsertDraft(r.Context(), id.DealerID, body)
	if err != nil {
		if errors.Is(err, drafts.ErrInvalidPatch) {
			jsonError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("upsert draft failed", "error", err, "dealer", id.Slug)
		jsonError(w, http.StatusInternalServerError, "could not save draft")
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

// DraftReset clears the dealer's staged changes. The draft row survives
// with empty data, so subsequent edits start from a blank slate.
func (a *Admin) DraftReset(w http.ResponseWriter, r *http.Request) {
	id, ok := a.resolveTenant(w, r)
	if !ok {
		return
	}

	rec, err := a.drafts.ResetDraft(r.Context(), id.DealerID)
	if err != nil {
		slog.Error("reset draft failed", "error", err, "dealer", id.Slug)
		jsonError(w, http.StatusInternalServerError, "could not reset draft")
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

// Publish promotes the dealer's draft to the live configuration. Publishing
// with nothing staged is a conflict, not a no-op: the admin should know
// their publish did nothing.
func (a *Admin) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := a.resolveTenant(w, r)
	if !ok {
		return
	}

	rec, err := a.drafts.Publish(r.Context(), id.DealerID)
	if err != nil {
		if errors.Is(err, drafts.ErrNoDraft) {
			jsonError(w, http.StatusConflict, "no draft to publish")
			return
		}
		slog.Error("publish failed", "error", err, "dealer", id.Slug)
		jsonError(w, http.StatusInternalServerError, "could not publish")
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(rec))
}

func (a *Admin) resolveTenant(w http.ResponseWriter, r *http.Request) (tenant.Identity, bool) {
	id, err := a.tenants.Resolve(r)
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
