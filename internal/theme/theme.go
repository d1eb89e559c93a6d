// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme holds the static theme registry and the resolver that
// flattens a theme's inheritance chain into a single merged descriptor.
// Themes are registered once at process start and never mutated afterwards.
package theme

import (
	"fmt"
	"html/template"
	"io"
)

// DefaultKey is the registry fallback when a dealer references a theme key
// that was never registered.
const DefaultKey = "base"

// Component renders one block implementation to HTML.
type Component interface {
	Render(w io.Writer, props map[string]any) error
}

// Factory lazily loads a Component. Returning an error means the
// implementation is unavailable at this scope; component resolution treats
// that as "not found here" and falls through to the next precedence level.
type Factory func() (Component, error)

// Block is one typed, ordered content unit within a page layout.
type Block struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

// Page is a route's default layout: SEO fields plus an ordered block list.
type Page struct {
	SEO    map[string]string `json:"seo,omitempty"`
	Blocks []Block           `json:"blocks"`
}

// Descriptor is a registered theme: design tokens, page layouts, and
// component bindings, optionally extending a parent theme.
type Descriptor struct {
	Key     string
	Name    string
	Version string

	// Extends names the parent theme key. Empty for root themes.
	Extends string

	Tokens     map[string]string
	Pages      map[string]Page
	Components map[string]Factory
}

// Overrides is the dealer-scoped variant of a Descriptor: the same three
// override surfaces without a theme identity of its own.
type Overrides struct {
	Tokens     map[string]string
	Pages      map[string]Page
	Components map[string]Factory
}

// Resolved is the flattened result of folding a theme's inheritance chain
// (plus optional dealer overrides). Identity fields come from the leaf
// theme even though the contents fold the whole chain.
type Resolved struct {
	Key     string
	Name    string
	Version string

	Tokens     map[string]string
	Pages      map[string]Page
	Components map[string]Factory
}

// templateComponent is a Component backed by an html/template.
type templateComponent struct {
	tmpl *template.Template
}

func (c *templateComponent) Render(w io.Writer, props map[string]any) error {
	return c.tmpl.Execute(w, props)
}

// HTMLFactory returns a Factory that parses the given template source on
// first load. A parse error surfaces as a load failure, which component
// resolution treats as a miss at that precedence level.
func HTMLFactory(name, src string) Factory {
	return func() (Component, error) {
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse component %q: %w", name, err)
		}
		return &templateComponent{tmpl: tmpl}, nil
	}
}
