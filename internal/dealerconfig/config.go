// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package dealerconfig defines the effective site configuration shape for a
// dealer, its defaults, the deep-merge used to layer overrides, and the
// validation applied to merged results and partial admin inputs.
package dealerconfig

// Config is the fully-populated site configuration served to the rendering
// layer. Every field carries a default; after validation no field is ever
// missing or zero-valued in a way rendering cannot handle.
type Config struct {
	Theme    Theme      `json:"theme" validate:"required"`
	Sections Sections   `json:"sections"`
	Menu     []MenuItem `json:"menu" validate:"dive"`
	Tokens   Tokens     `json:"tokens"`
}

// Theme holds the design identity of the site: the active theme key plus
// the color, typography, and spacing values derived from it.
type Theme struct {
	Key        string     `json:"key" validate:"required"`
	Colors     Colors     `json:"colors"`
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
}

// Colors are the three brand colors every theme must provide.
type Colors struct {
	Primary   string `json:"primary" validate:"required"`
	Secondary string `json:"secondary" validate:"required"`
	Accent    string `json:"accent" validate:"required"`
}

// Typography names the font stacks used for headings and body copy.
type Typography struct {
	HeadingFont string `json:"headingFont" validate:"required"`
	BodyFont    string `json:"bodyFont" validate:"required"`
}

// Spacing holds layout measurements.
type Spacing struct {
	ContainerWidth string `json:"containerWidth" validate:"required"`
	SectionPadding string `json:"sectionPadding" validate:"required"`
}

// Sections toggles the page sections a dealer site renders.
type Sections struct {
	ShowHero          bool `json:"showHero"`
	ShowFeatures      bool `json:"showFeatures"`
	ShowFooter        bool `json:"showFooter"`
	ShowInventoryLink bool `json:"showInventoryLink"`
	ShowTestimonials  bool `json:"showTestimonials"`
	ShowGallery       bool `json:"showGallery"`
	ShowContactForm   bool `json:"showContactForm"`
}

// MenuItem is a single navigation entry. Children nest recursively for
// dropdown menus.
type MenuItem struct {
	ID       string     `json:"id" validate:"required"`
	Label    string     `json:"label" validate:"required,max=120"`
	Slug     string     `json:"slug,omitempty"`
	Href     string     `json:"href,omitempty"`
	Target   string     `json:"target,omitempty" validate:"omitempty,oneof=_self _blank"`
	Order    int        `json:"order"`
	Children []MenuItem `json:"children,omitempty" validate:"omitempty,dive"`
}

// Tokens are the remaining flat design variables not covered by Theme.
type Tokens struct {
	BorderRadius string `json:"borderRadius" validate:"required"`
	ShadowSm     string `json:"shadowSm" validate:"required"`
	ShadowMd     string `json:"shadowMd" validate:"required"`
}
