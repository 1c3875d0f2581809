// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-farol/internal/logger"
)

// Sweeper periodically evicts idle buckets of a Limiter. It implements
// workers.Worker.
type Sweeper struct {
	limiter  *Limiter
	interval time.Duration
	idle     time.Duration
	logger   *logger.Logger
}

// NewSweeper returns a Sweeper that calls limiter.Sweep(idle) every interval.
func NewSweeper(limiter *Limiter, interval, idle time.Duration, log *logger.Logger) *Sweeper {
	return &Sweeper{limiter: limiter, interval: interval, idle: idle, logger: log}
}

// Run sweeps on every tick until ctx is cancelled. A non-positive interval
// disables sweeping and Run just waits for cancellation.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Dur("idle", s.idle).Msg("rate limit sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("rate limit sweeper stopped")
			return nil
		case <-ticker.C:
			if evicted := s.limiter.Sweep(s.idle); evicted > 0 {
				s.logger.Debug().Int("evicted", evicted).Int("buckets", s.limiter.Len()).Msg("evicted idle rate limit buckets")
			}
		}
	}
}
