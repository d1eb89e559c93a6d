// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package dealerconfig

import (
	"sort"
	"strings"
)

// DesignVariables flattens a validated config's theme and token fields into
// the variable map consumed by the page shell styling. Pure derivation: no
// side effects, and a validated config cannot produce a malformed result.
func DesignVariables(cfg *Config) map[string]string {
	return map[string]string{
		"color-primary":   cfg.Theme.Colors.Primary,
		"color-secondary": cfg.Theme.Colors.Secondary,
		"color-accent":    cfg.Theme.Colors.Accent,
		"font-heading":    cfg.Theme.Typography.HeadingFont,
		"font-body":       cfg.Theme.Typography.BodyFont,
		"container-width": cfg.Theme.Spacing.ContainerWidth,
		"section-padding": cfg.Theme.Spacing.SectionPadding,
		"border-radius":   cfg.Tokens.BorderRadius,
		"shadow-sm":       cfg.Tokens.ShadowSm,
		"shadow-md":       cfg.Tokens.ShadowMd,
	}
}

// CSS renders the design variables as a ":root" custom-property block,
// served by the public stylesheet endpoint. Keys are emitted in sorted
// order so the output is stable and cache-friendly.
func CSS(cfg *Config) string {
	vars := DesignVariables(cfg)
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root{")
	for _, k := range keys {
		b.WriteString("--")
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(vars[k])
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}
