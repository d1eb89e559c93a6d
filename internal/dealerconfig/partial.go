// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package dealerconfig

// Partial is the deep-partial mirror of Config used to validate admin
// patches: every field is optional, recursively. It is maintained alongside
// the full schema and used only for merge-layer inputs — merged results are
// always validated against the strict Config schema.
//
// Menu is the exception to pointer mirroring: arrays replace wholesale on
// merge, so a supplied menu must be complete and is validated with the full
// MenuItem rules.
type Partial struct {
	Theme    *PartialTheme    `json:"theme,omitempty"`
	Sections *PartialSections `json:"sections,omitempty"`
	Menu     []MenuItem       `json:"menu,omitempty" validate:"omitempty,dive"`
	Tokens   *PartialTokens   `json:"tokens,omitempty"`
}

// PartialTheme mirrors Theme with all fields optional.
type PartialTheme struct {
	Key        *string            `json:"key,omitempty"`
	Colors     *PartialColors     `json:"colors,omitempty"`
	Typography *PartialTypography `json:"typography,omitempty"`
	Spacing    *PartialSpacing    `json:"spacing,omitempty"`
}

// PartialColors mirrors Colors with all fields optional.
type PartialColors struct {
	Primary   *string `json:"primary,omitempty"`
	Secondary *string `json:"secondary,omitempty"`
	Accent    *string `json:"accent,omitempty"`
}

// PartialTypography mirrors Typography with all fields optional.
type PartialTypography struct {
	HeadingFont *string `json:"headingFont,omitempty"`
	BodyFont    *string `json:"bodyFont,omitempty"`
}

// PartialSpacing mirrors Spacing with all fields optional.
type PartialSpacing struct {
	ContainerWidth *string `json:"containerWidth,omitempty"`
	SectionPadding *string `json:"sectionPadding,omitempty"`
}

// PartialSections mirrors Sections with all fields optional.
type PartialSections struct {
	ShowHero          *bool `json:"showHero,omitempty"`
	ShowFeatures      *bool `json:"showFeatures,omitempty"`
	ShowFooter        *bool `json:"showFooter,omitempty"`
	ShowInventoryLink *bool `json:"showInventoryLink,omitempty"`
	ShowTestimonials  *bool `json:"showTestimonials,omitempty"`
	ShowGallery       *bool `json:"showGallery,omitempty"`
	ShowContactForm   *bool `json:"showContactForm,omitempty"`
}

// PartialTokens mirrors Tokens with all fields optional.
type PartialTokens struct {
	BorderRadius *string `json:"borderRadius,omitempty"`
	ShadowSm     *string `json:"shadowSm,omitempty"`
	ShadowMd     *string `json:"shadowMd,omitempty"`
}
