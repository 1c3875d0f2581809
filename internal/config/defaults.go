// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to every field left empty by the other layers.
const (
	DefaultAppName                  = "NewFarol"
	DefaultTokenAlgorithm           = "HS256"
	DefaultAccessTokenExpireMinutes = 30
	DefaultAdminEmailDomain         = "qualiit.com.br"
	DefaultDSN                      = "sqlite:///./farol.db"
	DefaultUpstreamOrg              = "qualiit"
	DefaultUpstreamAPIVersion       = "7.0"
	DefaultUpstreamTimeout          = 30 * time.Second
	DefaultHTTPAddress              = ":8000"
	DefaultRequestIDHeader          = "X-Request-ID"
	DefaultReadHeaderTimeout        = 10 * time.Second
	DefaultShutdownTimeout          = 15 * time.Second
	DefaultRequestsPerMinute        = 60
	DefaultBurstSize                = 10
	DefaultIdleTTL                  = 10 * time.Minute
	DefaultSweepInterval            = time.Minute
	DefaultLogLevel                 = "info"
	DefaultCacheTTL                 = 5 * time.Minute
)

// DefaultCORSOrigins are the development front-end origins.
var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:5174",
}

// defaults returns the lowest-priority configuration layer. The upstream
// base URL default depends on the organization, so it is resolved after the
// merge by applyDerivedDefaults.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:                     DefaultAppName,
			TokenAlgorithm:           DefaultTokenAlgorithm,
			AccessTokenExpireMinutes: DefaultAccessTokenExpireMinutes,
			AdminEmailDomain:         DefaultAdminEmailDomain,
		},
		CORS: CORS{
			AllowedOrigins: append([]string(nil), DefaultCORSOrigins...),
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Upstream: Upstream{
			Org:        DefaultUpstreamOrg,
			APIVersion: DefaultUpstreamAPIVersion,
			Timeout:    DefaultUpstreamTimeout,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			RequestIDHeader:   DefaultRequestIDHeader,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		RateLimit: RateLimit{
			RequestsPerMinute: DefaultRequestsPerMinute,
			BurstSize:         DefaultBurstSize,
			IdleTTL:           DefaultIdleTTL,
			SweepInterval:     DefaultSweepInterval,
		},
		Logging: Logging{Level: DefaultLogLevel},
		Cache:   Cache{TTL: DefaultCacheTTL},
	}
}

func applyDerivedDefaults(cfg *StructuredConfig) {
	if cfg.Upstream.BaseURL == "" && cfg.Upstream.Org != "" {
		cfg.Upstream.BaseURL = "https://dev.azure.com/" + cfg.Upstream.Org + "/"
	}
}
