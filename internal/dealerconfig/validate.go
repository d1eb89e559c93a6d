// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package dealerconfig

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. go-playground/validator caches
// struct metadata internally, so a single instance is reused.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate decodes a fully-merged configuration map into a Config and checks
// it against the strict schema. Both a shape mismatch (e.g. a string where a
// boolean belongs) and a missing required field are reported as errors.
//
// Validate is only for fully-merged accumulators; partial layer inputs go
// through ValidatePartial instead.
func Validate(m map[string]any) (*Config, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode merged config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// ValidatePartial checks an admin-supplied patch against the deep-partial
// schema: every field optional, recursively, but present fields must have
// the right shape. Used on merge-layer inputs before they are persisted.
func ValidatePartial(raw json.RawMessage) error {
	var p Partial
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode partial config: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return fmt.Errorf("validate partial config: %w", err)
	}
	return nil
}

// DecodeData parses a persisted customization payload into the map form the
// merge engine consumes. An empty payload decodes to an empty map.
func DecodeData(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode customization data: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
