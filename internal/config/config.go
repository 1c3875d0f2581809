// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-farol service. It aggregates all sub-configurations and is populated by
// merging CLI overrides, the environment source, an optional config file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : environment variable name for scalar fields.
//   - validate : per-field rules checked by go-playground/validator.
type StructuredConfig struct {
	// App holds application-level settings: the signing secret, debug mode,
	// identity token parameters and the reported name and version.
	App App

	// CORS holds the browser origins allowed to call the API.
	CORS CORS

	// Storage holds the relational database settings.
	Storage Storage

	// Upstream holds the issue-tracker connection and credential settings.
	Upstream Upstream `envPrefix:"AZDO_"`

	// Server holds the listen address and host-level timeouts.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds the token bucket parameters applied per client key.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Logging holds the log level.
	Logging Logging `envPrefix:"LOG_"`

	// Metrics toggles the Prometheus endpoint.
	Metrics Metrics

	// Cache holds the TTL of cached upstream lookups.
	Cache Cache `envPrefix:"CACHE_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey signs identity tokens. It must be at least 32 characters and
	// must not be a known placeholder.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY" validate:"required,notweak,min=32"`

	// Debug disables the production invariants and enables debug routes.
	// Env: DEBUG
	Debug bool `env:"DEBUG"`

	// Name is reported by the health endpoint.
	// Env: APP_NAME
	Name string `env:"APP_NAME"`

	// Version is reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// TokenAlgorithm is the HMAC algorithm expected on identity tokens.
	// Env: ALGORITHM
	TokenAlgorithm string `env:"ALGORITHM" validate:"omitempty,oneof=HS256 HS384 HS512"`

	// AccessTokenExpireMinutes is the lifetime of tokens issued by the debug
	// token route.
	// Env: ACCESS_TOKEN_EXPIRE_MINUTES
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES" validate:"gte=0"`

	// AdminEmailDomain marks identities that see data of every client.
	// Env: ADMIN_EMAIL_DOMAIN
	AdminEmailDomain string `env:"ADMIN_EMAIL_DOMAIN"`
}

// CORS holds cross-origin settings.
type CORS struct {
	// AllowedOrigins is the ordered list of browser origins allowed to call
	// the API. A wildcard origin is rejected.
	// Env: CORS_ORIGINS (comma separated)
	AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," validate:"nowildcard"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database URL, e.g. "sqlite:///./farol.db" or
	// "postgres://user:pass@db:5432/farol?sslmode=disable".
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`
}

// Upstream holds the issue-tracker settings.
type Upstream struct {
	// PAT is the personal access token sent via Basic authentication.
	// Env: AZDO_PAT
	PAT string `env:"PAT" validate:"required_without=AuthBasic"`

	// AuthBasic is an already encoded Basic credential. When set it takes
	// precedence over PAT.
	// Env: AZDO_AUTH_BASIC
	AuthBasic string `env:"AUTH_BASIC"`

	// Org is the organization name.
	// Env: AZDO_ORG
	Org string `env:"ORG"`

	// BaseURL is the organization URL.
	// Env: AZDO_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"omitempty,url"`

	// RootProject is the project queried for features and clients.
	// Env: AZDO_ROOT_PROJECT
	RootProject string `env:"ROOT_PROJECT"`

	// APIVersion is appended to every request as api-version.
	// Env: AZDO_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// Timeout bounds every upstream request.
	// Env: AZDO_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestIDHeader is the trusted header carrying the correlation ID.
	// Env: SERVER_REQUEST_ID_HEADER
	RequestIDHeader string `env:"REQUEST_ID_HEADER"`

	// ReadHeaderTimeout bounds reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// TrustedProxies lists the IP addresses or CIDR blocks of reverse proxies
	// whose X-Forwarded-For and X-Real-IP headers are honored. Empty means the
	// connection address always identifies an anonymous caller.
	// Env: SERVER_TRUSTED_PROXIES (comma separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:"," validate:"dive,cidr|ip"`
}

// RateLimit holds token bucket parameters.
type RateLimit struct {
	// RequestsPerMinute sets the refill rate (RequestsPerMinute/60 tokens per
	// second).
	// Env: RATE_LIMIT_REQUESTS_PER_MINUTE
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE" validate:"gt=0"`

	// BurstSize is the bucket capacity.
	// Env: RATE_LIMIT_BURST_SIZE
	BurstSize int `env:"BURST_SIZE" validate:"gt=0"`

	// IdleTTL is how long a bucket may stay untouched before the sweeper
	// evicts it.
	// Env: RATE_LIMIT_IDLE_TTL
	IdleTTL time.Duration `env:"IDLE_TTL"`

	// SweepInterval is how often the sweeper runs. Zero disables it.
	// Env: RATE_LIMIT_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Logging holds logger settings.
type Logging struct {
	// Level is one of trace, debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// Metrics holds the Prometheus toggle.
type Metrics struct {
	// Enabled exposes /metrics. Nil means the default (enabled).
	// Env: ENABLE_METRICS
	Enabled *bool `env:"ENABLE_METRICS"`
}

// Cache holds the TTL for cached upstream lookups.
type Cache struct {
	// TTL is how long a cached project list is served.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// IsProduction reports whether the production invariants apply: debug mode
// is off and the database URL does not point at localhost.
func (cfg *StructuredConfig) IsProduction() bool {
	return !cfg.App.Debug && !strings.Contains(cfg.Storage.DB.DSN, "localhost")
}

// MetricsEnabled reports whether /metrics should be served.
func (cfg *StructuredConfig) MetricsEnabled() bool {
	return cfg.Metrics.Enabled == nil || *cfg.Metrics.Enabled
}

// Engine returns the database engine the DSN refers to.
func (d DB) Engine() DatabaseEngine {
	return DetectEngine(d.DSN)
}

// Load assembles and validates the configuration from source. overrides,
// when non-nil, takes precedence over every other layer (CLI flags).
//
// Layers, first non-zero value wins:
//  1. overrides
//  2. source (environment)
//  3. config file (path resolved from layers 1 and 2)
//  4. defaults
//
// Returns a *ConfigurationError when the result violates any rule.
func Load(source Source, overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv(source).
		withFile().
		withDefaults().
		build()
}
