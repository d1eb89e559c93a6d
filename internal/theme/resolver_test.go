// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"errors"
	"strings"
	"testing"
)

// testRegistry builds an isolated registry with a two-level chain:
// t1 extends base.
func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	must := func(d *Descriptor) {
		if err := r.Register(d); err != nil {
			t.Fatalf("register %q: %v", d.Key, err)
		}
	}
	must(&Descriptor{
		Key: "base", Name: "Base", Version: "1.0.0",
		Tokens: map[string]string{"radius": "8px", "gutter": "1rem"},
		Pages: map[string]Page{
			"home": {
				SEO: map[string]string{"title": "Base", "description": "Base description"},
				Blocks: []Block{
					{Type: "hero", Props: map[string]any{"headline": "Base hero"}},
					{Type: "footer"},
				},
			},
		},
		Components: map[string]Factory{
			"Hero":   HTMLFactory("Hero", `<div>base hero</div>`),
			"Footer": HTMLFactory("Footer", `<div>base footer</div>`),
		},
	})
	must(&Descriptor{
		Key: "t1", Name: "T1", Version: "2.0.0", Extends: "base",
		Tokens: map[string]string{"radius": "12px"},
		Pages: map[string]Page{
			"home": {
				SEO: map[string]string{"title": "T1"},
				Blocks: []Block{
					{Type: "hero", Props: map[string]any{"headline": "T1 hero"}},
				},
			},
		},
		Components: map[string]Factory{
			"Hero": HTMLFactory("Hero", `<div>t1 hero</div>`),
		},
	})
	return r
}

func TestResolveChildTokenWins(t *testing.T) {
	r := testRegistry(t)

	res, err := r.Resolve("t1", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tokens["radius"] != "12px" {
		t.Errorf("radius = %q, want child value 12px", res.Tokens["radius"])
	}
	if res.Tokens["gutter"] != "1rem" {
		t.Errorf("gutter = %q, want inherited base value", res.Tokens["gutter"])
	}
}

func TestResolveIdentityIsLeaf(t *testing.T) {
	r := testRegistry(t)

	res, err := r.Resolve("t1", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Key != "t1" || res.Name != "T1" || res.Version != "2.0.0" {
		t.Errorf("identity = %s/%s/%s, want leaf theme identity", res.Key, res.Name, res.Version)
	}
}

func TestResolvePositionalBlockMerge(t *testing.T) {
	r := testRegistry(t)

	res, err := r.Resolve("t1", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	blocks := res.Pages["home"].Blocks
	if len(blocks) != 2 {
		t.Fatalf("block count = %d, want 2 (child hero + inherited footer)", len(blocks))
	}
	if blocks[0].Props["headline"] != "T1 hero" {
		t.Errorf("blocks[0] = %v, want child hero", blocks[0])
	}
	if blocks[1].Type != "footer" {
		t.Errorf("blocks[1].Type = %q, want inherited footer", blocks[1].Type)
	}
}

func TestResolveExtraChildBlocksAppend(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{
		Key: "base",
		Pages: map[string]Page{
			"home": {Blocks: []Block{{Type: "hero"}}},
		},
	})
	r.Register(&Descriptor{
		Key: "wide", Extends: "base",
		Pages: map[string]Page{
			"home": {Blocks: []Block{{Type: "hero2"}, {Type: "gallery"}, {Type: "footer"}}},
		},
	})

	res, err := r.Resolve("wide", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := res.Pages["home"].Blocks
	want := []string{"hero2", "gallery", "footer"}
	if len(got) != len(want) {
		t.Fatalf("block count = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Type != w {
			t.Errorf("blocks[%d].Type = %q, want %q", i, got[i].Type, w)
		}
	}
}

func TestResolveSEOShallowMerge(t *testing.T) {
	r := testRegistry(t)

	res, err := r.Resolve("t1", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	seo := res.Pages["home"].SEO
	if seo["title"] != "T1" {
		t.Errorf("title = %q, want child override", seo["title"])
	}
	if seo["description"] != "Base description" {
		t.Errorf("description = %q, want inherited base value", seo["description"])
	}
}

func TestResolveDealerOverridesOnTop(t *testing.T) {
	r := testRegistry(t)
	ov := &Overrides{
		Tokens: map[string]string{"radius": "0"},
		Pages: map[string]Page{
			"home": {Blocks: []Block{{Type: "hero", Props: map[string]any{"headline": "Dealer hero"}}}},
		},
		Components: map[string]Factory{
			"Hero": HTMLFactory("Hero", `<div>dealer hero</div>`),
		},
	}

	res, err := r.Resolve("t1", ov)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Tokens["radius"] != "0" {
		t.Errorf("radius = %q, want dealer value", res.Tokens["radius"])
	}
	if res.Pages["home"].Blocks[0].Props["headline"] != "Dealer hero" {
		t.Error("dealer block did not win the positional merge")
	}
	if res.Pages["home"].Blocks[1].Type != "footer" {
		t.Error("footer block lost under dealer overrides")
	}
}

func TestResolveUnknownLeafFallsBackToDefault(t *testing.T) {
	r := testRegistry(t)

	res, err := r.Resolve("no-such-theme", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Key != "base" {
		t.Errorf("key = %q, want fallback to %q", res.Key, DefaultKey)
	}
}

func TestResolveCycleDetected(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{Key: "a", Extends: "b"})
	r.Register(&Descriptor{Key: "b", Extends: "a"})

	_, err := r.Resolve("a", nil)
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("err = %v, want CycleError", err)
	}
	if msg := cycleErr.Error(); !strings.Contains(msg, "a -> b -> a") {
		t.Errorf("cycle message %q does not identify the chain", msg)
	}
}

func TestResolveThreeThemeCycle(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{Key: "a", Extends: "c"})
	r.Register(&Descriptor{Key: "b", Extends: "a"})
	r.Register(&Descriptor{Key: "c", Extends: "b"})

	_, err := r.Resolve("b", nil)
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("err = %v, want CycleError", err)
	}
	if len(cycleErr.Chain) != 4 {
		t.Errorf("chain = %v, want the full walk plus the repeat", cycleErr.Chain)
	}
}

func TestRegisterRejectsSelfReference(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Descriptor{Key: "loop", Extends: "loop"})
	var selfErr *SelfReferenceError
	if !errors.As(err, &selfErr) {
		t.Fatalf("err = %v, want SelfReferenceError", err)
	}
	var cycleErr *CycleError
	if errors.As(err, &cycleErr) {
		t.Error("self-reference must not be reported as a generic cycle")
	}
}

func TestResolveUnknownParent(t *testing.T) {
	r := NewRegistry()
	r.Register(&Descriptor{Key: "orphan", Extends: "ghost"})

	_, err := r.Resolve("orphan", nil)
	var unknownErr *UnknownThemeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("err = %v, want UnknownThemeError", err)
	}
	if unknownErr.Key != "orphan" || unknownErr.Parent != "ghost" {
		t.Errorf("error names %q->%q, want child and missing parent", unknownErr.Key, unknownErr.Parent)
	}
}

func TestResolveEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Resolve("anything", nil); err == nil {
		t.Error("expected error resolving against an empty registry")
	}
}

func TestRegisterBuiltin(t *testing.T) {
	r := NewRegistry()
	if err := RegisterBuiltin(r); err != nil {
		t.Fatalf("RegisterBuiltin: %v", err)
	}
	if r.Len() < 4 {
		t.Errorf("registered %d themes, want at least 4", r.Len())
	}

	// showroom -> midnight -> base: tokens fold across both levels.
	res, err := r.Resolve("showroom", nil)
	if err != nil {
		t.Fatalf("Resolve(showroom): %v", err)
	}
	if res.Tokens["radius"] != "12px" {
		t.Errorf("radius = %q, want midnight's 12px", res.Tokens["radius"])
	}
	if res.Tokens["max-width"] != "1280px" {
		t.Errorf("max-width = %q, want base's value", res.Tokens["max-width"])
	}
	if res.Tokens["gutter"] != "2rem" {
		t.Errorf("gutter = %q, want showroom's value", res.Tokens["gutter"])
	}
}
