// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongSecret = "k9Jq2vX7mP4tR8wZ1cN6bH3yL5dF0gS2"

// devSource returns a minimal valid source in debug mode.
func devSource(overrides map[string]string) Source {
	src := Source{
		"SECRET_KEY": strongSecret,
		"AZDO_PAT":   "pat-value",
		"DEBUG":      "true",
	}
	for k, v := range overrides {
		src[k] = v
	}
	return src
}

func requireConfigurationError(t *testing.T, err error) *ConfigurationError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigurationError, got %T", err)
	return cfgErr
}

func TestLoad_WeakSecretKeys(t *testing.T) {
	weak := []string{
		"change-me-in-production",
		"CHANGE-ME-IN-PRODUCTION",
		"secret",
		"Secret",
		"password",
		"PASSWORD",
		"admin",
		"Admin",
		"test",
		"TeSt",
		"dev",
		"DEV",
		"development",
		"Development",
	}

	for _, value := range weak {
		t.Run(value, func(t *testing.T) {
			cfg, err := Load(devSource(map[string]string{"SECRET_KEY": value}), nil)

			assert.Nil(t, cfg)
			cfgErr := requireConfigurationError(t, err)
			assert.Equal(t, StageFields, cfgErr.Stage)
			assert.Contains(t, cfgErr.Violations, "SECRET_KEY is a known weak or placeholder value")
			assert.NotContains(t, err.Error(), value, "secret value must not be echoed")
		})
	}
}

func TestLoad_StrongSecretKey(t *testing.T) {
	cfg, err := Load(devSource(nil), nil)

	require.NoError(t, err)
	assert.Equal(t, strongSecret, cfg.App.SecretKey)
}

func TestLoad_ShortSecretKey(t *testing.T) {
	_, err := Load(devSource(map[string]string{"SECRET_KEY": "short-but-not-weak"}), nil)

	cfgErr := requireConfigurationError(t, err)
	assert.Equal(t, []string{"SECRET_KEY must be at least 32 characters"}, cfgErr.Violations)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name     string
		source   Source
		expected []string
	}{
		{
			name:   "missing secret key",
			source: Source{"AZDO_PAT": "pat", "DEBUG": "true"},
			expected: []string{
				"missing required configuration: SECRET_KEY",
			},
		},
		{
			name:   "missing upstream credential",
			source: Source{"SECRET_KEY": strongSecret, "DEBUG": "true"},
			expected: []string{
				"missing required configuration: AZDO_PAT (or AZDO_AUTH_BASIC)",
			},
		},
		{
			name:   "both missing are reported together",
			source: Source{"DEBUG": "true"},
			expected: []string{
				"missing required configuration: SECRET_KEY",
				"missing required configuration: AZDO_PAT (or AZDO_AUTH_BASIC)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.source, nil)

			cfgErr := requireConfigurationError(t, err)
			assert.Equal(t, StageFields, cfgErr.Stage)
			assert.ElementsMatch(t, tt.expected, cfgErr.Violations)
		})
	}
}

func TestLoad_AuthBasicSatisfiesUpstreamCredential(t *testing.T) {
	src := Source{"SECRET_KEY": strongSecret, "AZDO_AUTH_BASIC": "OnBhdA==", "DEBUG": "true"}

	cfg, err := Load(src, nil)

	require.NoError(t, err)
	assert.Equal(t, "OnBhdA==", cfg.Upstream.AuthBasic)
}

func TestLoad_CORSWildcard(t *testing.T) {
	tests := []struct {
		name    string
		origins string
	}{
		{name: "only wildcard", origins: "*"},
		{name: "wildcard among origins", origins: "https://farol.example.com,*"},
		{name: "wildcard with spaces", origins: "https://farol.example.com, * "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(devSource(map[string]string{"CORS_ORIGINS": tt.origins}), nil)

			cfgErr := requireConfigurationError(t, err)
			assert.Equal(t, StageFields, cfgErr.Stage)
			assert.Contains(t, cfgErr.Violations, "CORS_ORIGINS must not contain a wildcard origin")
		})
	}
}

func TestLoad_TrustedProxies(t *testing.T) {
	cfg, err := Load(devSource(map[string]string{"SERVER_TRUSTED_PROXIES": "10.0.0.0/8,192.0.2.10,2001:db8::/32"}), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10", "2001:db8::/32"}, cfg.Server.TrustedProxies)

	_, err = Load(devSource(map[string]string{"SERVER_TRUSTED_PROXIES": "10.0.0.0/8,proxy.internal"}), nil)
	cfgErr := requireConfigurationError(t, err)
	assert.Equal(t, StageFields, cfgErr.Stage)
	assert.Contains(t, cfgErr.Violations, "SERVER_TRUSTED_PROXIES entries must be IP addresses or CIDR blocks")
}

func TestLoad_ProductionWithConcreteHTTPSOrigins(t *testing.T) {
	src := Source{
		"SECRET_KEY":   strongSecret,
		"AZDO_PAT":     "pat",
		"DATABASE_URL": "postgres://farol:pw@db.internal:5432/farol",
		"CORS_ORIGINS": "https://farol.example.com,https://admin.example.com",
	}

	cfg, err := Load(src, nil)

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://farol.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ProductionAggregatesAllViolations(t *testing.T) {
	src := Source{
		"SECRET_KEY":   strongSecret,
		"AZDO_PAT":     "pat",
		"DATABASE_URL": "sqlite:///./prod.db",
		"CORS_ORIGINS": "http://localhost:3000",
	}

	_, err := Load(src, nil)

	cfgErr := requireConfigurationError(t, err)
	assert.Equal(t, StageProduction, cfgErr.Stage)
	require.Len(t, cfgErr.Violations, 3)
	assert.Equal(t, "DATABASE_URL: SQLite must not be used in production", cfgErr.Violations[0])
	assert.Equal(t, "CORS_ORIGINS: localhost origin is not allowed in production: http://localhost:3000", cfgErr.Violations[1])
	assert.Equal(t, "CORS_ORIGINS: all origins must use https in production", cfgErr.Violations[2])

	msg := err.Error()
	assert.True(t, strings.Contains(msg, "SQLite"))
	assert.True(t, strings.Contains(msg, "localhost origin"))
	assert.True(t, strings.Contains(msg, "https"))
}

func TestLoad_ProductionLoopbackOrigin(t *testing.T) {
	src := Source{
		"SECRET_KEY":   strongSecret,
		"AZDO_PAT":     "pat",
		"DATABASE_URL": "postgres://db.internal/farol",
		"CORS_ORIGINS": "https://127.0.0.1:8443",
	}

	_, err := Load(src, nil)

	cfgErr := requireConfigurationError(t, err)
	assert.Equal(t, []string{"CORS_ORIGINS: localhost origin is not allowed in production: https://127.0.0.1:8443"}, cfgErr.Violations)
}

func TestLoad_DebugSkipsProductionChecks(t *testing.T) {
	src := devSource(map[string]string{
		"DATABASE_URL": "sqlite:///./dev.db",
		"CORS_ORIGINS": "http://localhost:5173",
	})

	cfg, err := Load(src, nil)

	require.NoError(t, err)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_LocalhostDatabaseIsNotProduction(t *testing.T) {
	src := Source{
		"SECRET_KEY":   strongSecret,
		"AZDO_PAT":     "pat",
		"DATABASE_URL": "postgres://farol@localhost:5432/farol",
	}

	cfg, err := Load(src, nil)

	require.NoError(t, err)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FieldStageStopsBeforeProductionStage(t *testing.T) {
	src := Source{
		"SECRET_KEY":   "password",
		"AZDO_PAT":     "pat",
		"DATABASE_URL": "sqlite:///./prod.db",
		"CORS_ORIGINS": "http://localhost:3000",
	}

	_, err := Load(src, nil)

	cfgErr := requireConfigurationError(t, err)
	assert.Equal(t, StageFields, cfgErr.Stage)
	for _, v := range cfgErr.Violations {
		assert.NotContains(t, v, "production")
	}
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	_, err := Load(devSource(map[string]string{"RATE_LIMIT_BURST_SIZE": "-1"}), nil)

	cfgErr := requireConfigurationError(t, err)
	assert.Contains(t, cfgErr.Violations, "RATE_LIMIT_BURST_SIZE must be greater than 0")
}

func TestConfigurationError_Format(t *testing.T) {
	err := &ConfigurationError{Stage: StageProduction, Violations: []string{"first", "second"}}

	assert.Equal(t, "invalid configuration (production):\n  - first\n  - second", err.Error())
	assert.ErrorIs(t, err, ErrConfiguration)
}
