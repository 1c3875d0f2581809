// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from source using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types. The process environment is never
// consulted directly, so callers control exactly what is read.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg any, source Source) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: source})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
