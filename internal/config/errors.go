// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

// Validation stages reported in [ConfigurationError.Stage].
const (
	// StageSource means a layer could not be read or decoded.
	StageSource = "source"
	// StageFields means one or more per-field rules failed.
	StageFields = "fields"
	// StageProduction means the cross-field production invariants failed.
	StageProduction = "production"
)

// ConfigurationError is the fatal startup error. It carries every violation
// found in the failing stage so an operator can fix them in one pass.
type ConfigurationError struct {
	Stage      string
	Violations []string

	cause error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConfiguration.Error())
	b.WriteString(" (")
	b.WriteString(e.Stage)
	b.WriteString("):")
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v)
	}

	return b.String()
}

// Is reports whether target is [ErrConfiguration].
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Unwrap returns the underlying source error, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.cause
}
