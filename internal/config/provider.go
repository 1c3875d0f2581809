// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "sync"

// Loader produces a validated configuration.
type Loader func() (*StructuredConfig, error)

// Provider memoizes a [Loader]. The first successful Get caches the result and
// every later Get returns the same instance until Reset is called. Failed
// loads are not cached.
//
// A Provider is passed explicitly to whoever needs the configuration, so
// tests can build independent providers and run in parallel.
type Provider struct {
	mu     sync.Mutex
	load   Loader
	cached *StructuredConfig
}

// NewProvider returns a Provider backed by load.
func NewProvider(load Loader) *Provider {
	return &Provider{load: load}
}

// NewSourceProvider returns a Provider that loads from source with the given
// CLI overrides.
func NewSourceProvider(source Source, overrides *StructuredConfig) *Provider {
	return NewProvider(func() (*StructuredConfig, error) {
		return Load(source, overrides)
	})
}

// Get returns the cached configuration, loading it on first use.
func (p *Provider) Get() (*StructuredConfig, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil {
		return p.cached, nil
	}

	cfg, err := p.load()
	if err != nil {
		return nil, err
	}
	p.cached = cfg

	return cfg, nil
}

// Reset drops the cached configuration; the next Get loads again.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cached = nil
}
