// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements per-client token buckets.
//
// Each client key owns one bucket with capacity burst that refills at
// requestsPerMinute/60 tokens per second. Buckets are created on first use
// and may be evicted by [Limiter.Sweep] once they are idle and full again,
// which never changes the outcome of a later [Limiter.Check].
package ratelimit
