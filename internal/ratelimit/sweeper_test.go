// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_EvictsIdleBuckets(t *testing.T) {
	l := New(6000, 1)
	l.Check("k", 1)
	require.Equal(t, 1, l.Len())

	s := NewSweeper(l, 5*time.Millisecond, time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestSweeper_DisabledWaitsForCancel(t *testing.T) {
	l := New(60, 10)
	l.Check("k", 1)

	s := NewSweeper(l, 0, 0, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, 1, l.Len())
}
