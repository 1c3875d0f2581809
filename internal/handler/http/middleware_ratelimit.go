// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/metrics"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
)

// rateLimitExempt lists paths never charged against a bucket.
var rateLimitExempt = map[string]struct{}{
	"/":        {},
	"/health":  {},
	"/metrics": {},
}

// withRateLimit charges one token per request to the caller's bucket. A
// rejected request gets 429 with Retry-After and never reaches translation
// or dispatch.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := rateLimitExempt[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		rc, ok := utils.RequestContextFrom(r.Context())
		if !ok {
			rc = &models.RequestContext{ClientKey: clientKeyIPPrefix + utils.ClientIP(r, h.trustedProxies)}
		}

		decision := h.limiter.Check(rc.ClientKey, 1)
		if decision.Allowed {
			rc.Annotate("ratelimit", fmt.Sprintf("allowed remaining=%.2f", decision.Remaining))
			next.ServeHTTP(w, r)
			return
		}

		metrics.RateLimitRejects.Inc()
		rc.Annotate("ratelimit", "rejected")
		logger.FromRequest(r).Warn().
			Str("client_key", rc.ClientKey).
			Dur("retry_after", decision.RetryAfter).
			Msg("rate limit exceeded")

		retryAfter := decision.RetryAfterSeconds()
		w.Header().Set("Retry-After", strconv.Itoa(decision.RetryAfterHeader()))
		h.writeErrorResponse(w, r, http.StatusTooManyRequests, models.ErrorResponse{
			ErrorCode:         app.CodeRateLimitExceeded,
			Message:           app.MsgRateLimitExceeded,
			RetryAfterSeconds: &retryAfter,
		})
	})
}
