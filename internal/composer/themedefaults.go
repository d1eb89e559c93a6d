// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package composer

// themeDefaults is the legacy per-theme partial config table, keyed by
// theme key. It predates the inheritance-based theme registry and only
// touches colors, typography, and tokens; it is kept so dealers created
// before the registry existed keep their look.
var themeDefaults = map[string]map[string]any{
	"midnight": {
		"theme": map[string]any{
			"colors": map[string]any{
				"primary":   "#0f0f1a",
				"secondary": "#1b1b2f",
				"accent":    "#4d9de0",
			},
			"typography": map[string]any{
				"headingFont": "'Space Grotesk', sans-serif",
			},
		},
		"tokens": map[string]any{
			"borderRadius": "12px",
		},
	},
	"heritage": {
		"theme": map[string]any{
			"colors": map[string]any{
				"primary":   "#2b2118",
				"secondary": "#5e503f",
				"accent":    "#c6ac8f",
			},
			"typography": map[string]any{
				"headingFont": "'Playfair Display', serif",
				"bodyFont":    "'Source Serif Pro', serif",
			},
		},
		"tokens": map[string]any{
			"borderRadius": "2px",
		},
	},
	"showroom": {
		"theme": map[string]any{
			"colors": map[string]any{
				"primary":   "#101820",
				"secondary": "#2d3142",
				"accent":    "#f2545b",
			},
		},
	},
}
