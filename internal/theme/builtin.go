// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import "fmt"

// RegisterBuiltin installs the themes that ship with the platform.
// "base" is the root every other theme extends, directly or through
// "midnight". Called once from main during startup.
func RegisterBuiltin(r *Registry) error {
	themes := []*Descriptor{
		{
			Key:     "base",
			Name:    "Base",
			Version: "1.0.0",
			Tokens: map[string]string{
				"radius":     "8px",
				"gutter":     "1.5rem",
				"max-width":  "1280px",
				"hero-align": "center",
			},
			Pages: map[string]Page{
				"home": {
					SEO: map[string]string{
						"title":       "Welcome",
						"description": "Your local dealership",
					},
					Blocks: []Block{
						{Type: "hero", Props: map[string]any{"headline": "Find your next vehicle"}},
						{Type: "features", Props: map[string]any{"columns": 3}},
						{Type: "footer"},
					},
				},
				"inventory": {
					SEO: map[string]string{"title": "Inventory"},
					Blocks: []Block{
						{Type: "inventoryGrid", Props: map[string]any{"pageSize": 24}},
						{Type: "footer"},
					},
				},
			},
			Components: map[string]Factory{
				"Hero":          HTMLFactory("Hero", `<section class="hero"><h1>{{.headline}}</h1></section>`),
				"Features":      HTMLFactory("Features", `<section class="features" data-columns="{{.columns}}"></section>`),
				"Footer":        HTMLFactory("Footer", `<footer class="site-footer">{{.copyright}}</footer>`),
				"InventoryGrid": HTMLFactory("InventoryGrid", `<section class="inventory-grid" data-page-size="{{.pageSize}}"></section>`),
				"ContactForm":   HTMLFactory("ContactForm", `<form class="contact-form" method="post" action="/contact"></form>`),
			},
		},
		{
			Key:     "midnight",
			Name:    "Midnight",
			Version: "1.2.0",
			Extends: "base",
			Tokens: map[string]string{
				"radius":     "12px",
				"hero-align": "left",
			},
			Pages: map[string]Page{
				"home": {
					SEO: map[string]string{"title": "Midnight Motors"},
					Blocks: []Block{
						{Type: "hero", Props: map[string]any{"headline": "Drive the night", "variant": "dark"}},
					},
				},
			},
			Components: map[string]Factory{
				"Hero": HTMLFactory("Hero", `<section class="hero hero--dark"><h1>{{.headline}}</h1></section>`),
			},
		},
		{
			Key:     "heritage",
			Name:    "Heritage",
			Version: "1.0.1",
			Extends: "base",
			Tokens: map[string]string{
				"radius": "2px",
				"serif":  "'Playfair Display', serif",
			},
			Components: map[string]Factory{
				"Testimonials": HTMLFactory("Testimonials", `<section class="testimonials testimonials--classic"></section>`),
			},
		},
		{
			Key:     "showroom",
			Name:    "Showroom",
			Version: "2.0.0",
			Extends: "midnight",
			Tokens: map[string]string{
				"gutter": "2rem",
			},
			Pages: map[string]Page{
				"home": {
					Blocks: []Block{
						{Type: "hero", Props: map[string]any{"headline": "The showroom experience", "variant": "video"}},
						{Type: "gallery", Props: map[string]any{"layout": "masonry"}},
					},
				},
			},
			Components: map[string]Factory{
				"Gallery": HTMLFactory("Gallery", `<section class="gallery" data-layout="{{.layout}}"></section>`),
			},
		},
	}

	for _, d := range themes {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("register builtin theme %q: %w", d.Key, err)
		}
	}
	return nil
}
