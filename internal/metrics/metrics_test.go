// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gathered returns the sum of all samples of the named family in the default
// registry, or -1 when the family is absent.
func gathered(t *testing.T, name string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var sum float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				sum += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sum += m.GetGauge().GetValue()
			}
		}
		return sum
	}

	return -1
}

func TestRateLimitRejects_Increments(t *testing.T) {
	RateLimitRejects.Inc()
	before := gathered(t, "farol_rate_limit_rejects_total")

	RateLimitRejects.Inc()

	assert.Equal(t, before+1, gathered(t, "farol_rate_limit_rejects_total"))
}

func TestErrorResponses_LabelledByCode(t *testing.T) {
	ErrorResponses.WithLabelValues("NOT_FOUND").Inc()
	before := gathered(t, "farol_error_responses_total")

	ErrorResponses.WithLabelValues("NOT_FOUND").Inc()
	ErrorResponses.WithLabelValues("INTERNAL_ERROR").Inc()

	assert.Equal(t, before+2, gathered(t, "farol_error_responses_total"))
}

func TestRateLimitBuckets_Set(t *testing.T) {
	RateLimitBuckets.Set(3)
	assert.Equal(t, float64(3), gathered(t, "farol_rate_limit_buckets"))
	RateLimitBuckets.Set(0)
}
