// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// weakSecrets are rejected as SECRET_KEY regardless of case.
var weakSecrets = []string{
	"change-me-in-production",
	"secret",
	"password",
	"admin",
	"test",
	"dev",
	"development",
}

var (
	fieldValidator = newFieldValidator()
	envKeyByField  = collectEnvKeys(reflect.TypeOf(StructuredConfig{}), "", "", map[string]string{})
)

func newFieldValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notweak", isNotWeakSecret); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("nowildcard", hasNoWildcardOrigin); err != nil {
		panic(err)
	}

	return v
}

func isNotWeakSecret(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, weak := range weakSecrets {
		if value == weak {
			return false
		}
	}

	return true
}

func hasNoWildcardOrigin(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return true
	}

	for i := 0; i < field.Len(); i++ {
		if strings.TrimSpace(field.Index(i).String()) == "*" {
			return false
		}
	}

	return true
}

// validate checks the merged [StructuredConfig] in two stages. Per-field
// rules run first; if any fails the cross-field production checks are not
// attempted. Each stage reports all of its violations at once.
func (cfg *StructuredConfig) validate() error {
	if violations := cfg.fieldViolations(); len(violations) > 0 {
		return &ConfigurationError{Stage: StageFields, Violations: violations}
	}

	if violations := cfg.productionViolations(); len(violations) > 0 {
		return &ConfigurationError{Stage: StageProduction, Violations: violations}
	}

	return nil
}

func (cfg *StructuredConfig) fieldViolations() []string {
	err := fieldValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, describeFieldError(fe))
	}

	return violations
}

// productionViolations returns every production invariant the config breaks.
// It is empty outside production mode.
func (cfg *StructuredConfig) productionViolations() []string {
	if !cfg.IsProduction() {
		return nil
	}

	var violations []string

	dsn := cfg.Storage.DB.DSN
	if cfg.Storage.DB.Engine().IsLocalFile() || strings.Contains(strings.ToLower(dsn), "sqlite") {
		violations = append(violations, "DATABASE_URL: SQLite must not be used in production")
	}

	allHTTPS := true
	for _, origin := range cfg.CORS.AllowedOrigins {
		if strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
			violations = append(violations, fmt.Sprintf("CORS_ORIGINS: localhost origin is not allowed in production: %s", origin))
		}
		if !strings.HasPrefix(origin, "https://") {
			allHTTPS = false
		}
	}
	if !allHTTPS {
		violations = append(violations, "CORS_ORIGINS: all origins must use https in production")
	}

	return violations
}

// describeFieldError renders a validator error using the environment key of
// the field. Field values are never included: they may be secrets.
func describeFieldError(fe validator.FieldError) string {
	key := envKey(fe.StructNamespace())

	switch fe.Tag() {
	case "required":
		return "missing required configuration: " + key
	case "required_without":
		return fmt.Sprintf("missing required configuration: %s (or %s)", key, envKey(siblingNamespace(fe.StructNamespace(), fe.Param())))
	case "notweak":
		return key + " is a known weak or placeholder value"
	case "nowildcard":
		return key + " must not contain a wildcard origin"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", key, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", key)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", key, fe.Param())
	case "url":
		return key + " must be a valid URL"
	case "cidr|ip":
		return key + " entries must be IP addresses or CIDR blocks"
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}

func envKey(structNamespace string) string {
	_, path, _ := strings.Cut(structNamespace, ".")
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	if key, ok := envKeyByField[path]; ok {
		return key
	}

	return path
}

func siblingNamespace(structNamespace, field string) string {
	if i := strings.LastIndex(structNamespace, "."); i >= 0 {
		return structNamespace[:i+1] + field
	}

	return field
}

// collectEnvKeys maps dotted field paths (e.g. "Upstream.PAT") to the full
// environment key (e.g. "AZDO_PAT"), following envPrefix tags.
func collectEnvKeys(t reflect.Type, path, prefix string, keys map[string]string) map[string]string {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		fieldPath := field.Name
		if path != "" {
			fieldPath = path + "." + field.Name
		}

		if field.Type.Kind() == reflect.Struct {
			collectEnvKeys(field.Type, fieldPath, prefix+field.Tag.Get("envPrefix"), keys)
			continue
		}

		if name, _, _ := strings.Cut(field.Tag.Get("env"), ","); name != "" {
			keys[fieldPath] = prefix + name
		}
	}

	return keys
}
