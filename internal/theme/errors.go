// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"strings"
)

// CycleError reports an inheritance cycle of length two or more. These are
// registration bugs and are never silently defaulted.
type CycleError struct {
	// Chain lists the keys walked until the repeat, repeat included,
	// e.g. ["showroom", "midnight", "showroom"].
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("theme inheritance cycle: %s", strings.Join(e.Chain, " -> "))
}

// SelfReferenceError reports a theme declaring itself as its own parent.
// Kept distinct from CycleError so the misconfiguration reads clearly.
type SelfReferenceError struct {
	Key string
}

func (e *SelfReferenceError) Error() string {
	return fmt.Sprintf("theme %q extends itself", e.Key)
}

// UnknownThemeError reports a descriptor extending a key that was never
// registered.
type UnknownThemeError struct {
	Key    string // the child declaring the reference
	Parent string // the missing parent key
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("theme %q extends unknown theme %q", e.Key, e.Parent)
}
