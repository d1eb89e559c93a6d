// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package dealerconfig

import (
	"encoding/json"
	"fmt"
)

// DefaultThemeKey is the theme applied when a dealer has no explicit theme.
const DefaultThemeKey = "base"

// Default returns the global default configuration. Every resolution starts
// from this; override layers are merged on top of it. The returned value is
// a fresh copy safe for the caller to mutate.
func Default() *Config {
	return &Config{
		Theme: Theme{
			Key: DefaultThemeKey,
			Colors: Colors{
				Primary:   "#1a1a2e",
				Secondary: "#16213e",
				Accent:    "#e94560",
			},
			Typography: Typography{
				HeadingFont: "'Inter', sans-serif",
				BodyFont:    "'Inter', sans-serif",
			},
			Spacing: Spacing{
				ContainerWidth: "1280px",
				SectionPadding: "4rem",
			},
		},
		Sections: Sections{
			ShowHero:          true,
			ShowFeatures:      true,
			ShowFooter:        true,
			ShowInventoryLink: true,
			ShowTestimonials:  false,
			ShowGallery:       false,
			ShowContactForm:   true,
		},
		Menu: []MenuItem{
			{ID: "home", Label: "Home", Slug: "/", Order: 1},
			{ID: "inventory", Label: "Inventory", Slug: "/inventory", Order: 2},
			{ID: "about", Label: "About Us", Slug: "/about", Order: 3},
			{ID: "contact", Label: "Contact", Slug: "/contact", Order: 4},
		},
		Tokens: Tokens{
			BorderRadius: "8px",
			ShadowSm:     "0 1px 2px rgba(0,0,0,0.08)",
			ShadowMd:     "0 4px 12px rgba(0,0,0,0.12)",
		},
	}
}

// DefaultMap returns the default configuration as a plain map, the shape the
// merge engine operates on.
func DefaultMap() map[string]any {
	m, err := ToMap(Default())
	if err != nil {
		// Default() is a fixed literal; a marshal failure here is a bug.
		panic(fmt.Sprintf("dealerconfig: defaults not serializable: %v", err))
	}
	return m
}

// ToMap converts a Config to the map form used by the merge engine.
func ToMap(cfg *Config) (map[string]any, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode config map: %w", err)
	}
	return m, nil
}
