// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var errUnsupportedConfigFormat = errors.New("unsupported config file format")

// fileConfig mirrors [StructuredConfig] with the key names used in JSON and
// YAML config files.
type fileConfig struct {
	App struct {
		SecretKey                string `json:"secret_key" yaml:"secret_key"`
		Debug                    bool   `json:"debug" yaml:"debug"`
		Name                     string `json:"name" yaml:"name"`
		Version                  string `json:"version" yaml:"version"`
		TokenAlgorithm           string `json:"algorithm" yaml:"algorithm"`
		AccessTokenExpireMinutes int    `json:"access_token_expire_minutes" yaml:"access_token_expire_minutes"`
		AdminEmailDomain         string `json:"admin_email_domain" yaml:"admin_email_domain"`
	} `json:"app" yaml:"app"`

	CORS struct {
		AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
	} `json:"cors" yaml:"cors"`

	Database struct {
		URL string `json:"url" yaml:"url"`
	} `json:"database" yaml:"database"`

	Upstream struct {
		PAT         string   `json:"pat" yaml:"pat"`
		AuthBasic   string   `json:"auth_basic" yaml:"auth_basic"`
		Org         string   `json:"org" yaml:"org"`
		BaseURL     string   `json:"base_url" yaml:"base_url"`
		RootProject string   `json:"root_project" yaml:"root_project"`
		APIVersion  string   `json:"api_version" yaml:"api_version"`
		Timeout     Duration `json:"timeout" yaml:"timeout"`
	} `json:"upstream" yaml:"upstream"`

	Server struct {
		HTTPAddress       string   `json:"address" yaml:"address"`
		RequestIDHeader   string   `json:"request_id_header" yaml:"request_id_header"`
		ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		TrustedProxies    []string `json:"trusted_proxies" yaml:"trusted_proxies"`
	} `json:"server" yaml:"server"`

	RateLimit struct {
		RequestsPerMinute int      `json:"requests_per_minute" yaml:"requests_per_minute"`
		BurstSize         int      `json:"burst_size" yaml:"burst_size"`
		IdleTTL           Duration `json:"idle_ttl" yaml:"idle_ttl"`
		SweepInterval     Duration `json:"sweep_interval" yaml:"sweep_interval"`
	} `json:"rate_limit" yaml:"rate_limit"`

	Logging struct {
		Level string `json:"level" yaml:"level"`
	} `json:"logging" yaml:"logging"`

	Metrics struct {
		Enabled *bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`

	Cache struct {
		TTL Duration `json:"ttl" yaml:"ttl"`
	} `json:"cache" yaml:"cache"`
}

// parseFile reads a config file and converts it to a [StructuredConfig]
// layer. The format is chosen by extension: .json, .yaml or .yml.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedConfigFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SecretKey:                fc.App.SecretKey,
			Debug:                    fc.App.Debug,
			Name:                     fc.App.Name,
			Version:                  fc.App.Version,
			TokenAlgorithm:           fc.App.TokenAlgorithm,
			AccessTokenExpireMinutes: fc.App.AccessTokenExpireMinutes,
			AdminEmailDomain:         fc.App.AdminEmailDomain,
		},
		CORS: CORS{AllowedOrigins: fc.CORS.AllowedOrigins},
		Storage: Storage{
			DB: DB{DSN: fc.Database.URL},
		},
		Upstream: Upstream{
			PAT:         fc.Upstream.PAT,
			AuthBasic:   fc.Upstream.AuthBasic,
			Org:         fc.Upstream.Org,
			BaseURL:     fc.Upstream.BaseURL,
			RootProject: fc.Upstream.RootProject,
			APIVersion:  fc.Upstream.APIVersion,
			Timeout:     time.Duration(fc.Upstream.Timeout),
		},
		Server: Server{
			HTTPAddress:       fc.Server.HTTPAddress,
			RequestIDHeader:   fc.Server.RequestIDHeader,
			ReadHeaderTimeout: time.Duration(fc.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(fc.Server.ShutdownTimeout),
			TrustedProxies:    fc.Server.TrustedProxies,
		},
		RateLimit: RateLimit{
			RequestsPerMinute: fc.RateLimit.RequestsPerMinute,
			BurstSize:         fc.RateLimit.BurstSize,
			IdleTTL:           time.Duration(fc.RateLimit.IdleTTL),
			SweepInterval:     time.Duration(fc.RateLimit.SweepInterval),
		},
		Logging: Logging{Level: fc.Logging.Level},
		Metrics: Metrics{Enabled: fc.Metrics.Enabled},
		Cache:   Cache{TTL: time.Duration(fc.Cache.TTL)},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Bare numbers are nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := node.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
