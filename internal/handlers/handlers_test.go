// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dealerpress/internal/components"
	"dealerpress/internal/composer"
	"dealerpress/internal/drafts"
	"dealerpress/internal/models"
	"dealerpress/internal/tenant"
	"dealerpress/internal/theme"
)

// fakeDealers backs both the tenant resolver and the composer in tests.
type fakeDealers struct {
	byHost map[string]*models.Dealer
}

func (f *fakeDealers) FindByHost(host string) (*models.Dealer, error) {
	return f.byHost[host], nil
}

func (f *fakeDealers) FindByID(id uuid.UUID) (*models.Dealer, error) {
	for _, d := range f.byHost {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

// fakeCustomizations is an in-memory customization store covering both the
// composer read path and the drafts workflow.
type fakeCustomizations struct {
	records map[uuid.UUID]map[models.CustomizationStatus]*models.Customization
}

func newFakeCustomizations() *fakeCustomizations {
	return &fakeCustomizations{records: make(map[uuid.UUID]map[models.CustomizationStatus]*models.Customization)}
}

func (f *fakeCustomizations) forDealer(id uuid.UUID) map[models.CustomizationStatus]*models.Customization {
	if f.records[id] == nil {
		f.records[id] = make(map[models.CustomizationStatus]*models.Customization)
	}
	return f.records[id]
}

func (f *fakeCustomizations) Find(dealerID uuid.UUID, status models.CustomizationStatus) (*models.Customization, error) {
	return f.forDealer(dealerID)[status], nil
}

func (f *fakeCustomizations) SaveDraft(dealerID uuid.UUID, data json.RawMessage) (*models.Customization, error) {
	recs := f.forDealer(dealerID)
	version := 1
	if existing := recs[models.StatusDraft]; existing != nil {
		version = existing.Version + 1
	}
	rec := &models.Customization{
		ID:       uuid.New(),
		DealerID: dealerID,
		Version:  version,
		Status:   models.StatusDraft,
		Data:     data,
	}
	recs[models.StatusDraft] = rec
	return rec, nil
}

func (f *fakeCustomizations) ResetDraft(dealerID uuid.UUID) (*models.Customization, error) {
	return f.SaveDraft(dealerID, json.RawMessage(`{}`))
}

func (f *fakeCustomizations) Publish(dealerID uuid.UUID) (*models.Customization, error) {
	recs := f.forDealer(dealerID)
	draft := recs[models.StatusDraft]
	if draft == nil {
		return nil, drafts.ErrNoDraft
	}
	pub := &models.Customization{
		ID:       uuid.New(),
		DealerID: dealerID,
		Version:  draft.Version,
		Status:   models.StatusPublished,
		Data:     draft.Data,
	}
	recs[models.StatusPublished] = pub
	delete(recs, models.StatusDraft)
	return pub, nil
}

// testServer wires the handler groups onto a chi router the way the real
// router does, against in-memory stores.
func testServer(t *testing.T) (*chi.Mux, *models.Dealer, *fakeCustomizations) {
	t.Helper()

	dealer := &models.Dealer{
		ID:       uuid.New(),
		Slug:     "prestige-motors",
		Name:     "Prestige Motors",
		Hostname: "prestige.test",
		ThemeKey: "midnight",
		Locale:   "en-US",
	}
	dealers := &fakeDealers{byHost: map[string]*models.Dealer{dealer.Hostname: dealer}}
	customizations := newFakeCustomizations()

	registry := theme.NewRegistry()
	if err := theme.RegisterBuiltin(registry); err != nil {
		t.Fatalf("RegisterBuiltin: %v", err)
	}

	tenants := tenant.NewResolver(dealers)
	comp := composer.New(dealers, customizations, nil)
	compResolver := components.NewResolver(registry)

	pub := NewPublic(tenants, comp, compResolver)
	adm := NewAdmin(tenants, drafts.NewService(customizations))

	r := chi.NewRouter()
	r.Get("/api/config", pub.Config)
	r.Get("/theme.css", pub.Stylesheet)
	r.Get("/api/components/{name}", pub.Component)
	r.Get("/admin/api/draft", adm.DraftGet)
	r.Put("/admin/api/draft", adm.DraftUpsert)
	r.Delete("/admin/api/draft", adm.DraftReset)
	r.Post("/admin/api/publish", adm.Publish)
	return r, dealer, customizations
}

func decodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, body)
	}
	return out
}

func wantStatus(t *testing.T, got, want int, body []byte) {
	t.Helper()
	if got != want {
		t.Fatalf("status = %d, want %d\nbody: %s", got, want, body)
	}
}
