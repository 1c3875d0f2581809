package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/metrics"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withLogging writes the access log and records the request metrics. The
// request_id field comes from the logger attached by the identity stage.
//
// The exit entry is deferred so it is written even when a downstream stage
// panics; the panic is then re-raised unchanged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		rc, ok := utils.RequestContextFrom(r.Context())
		if !ok {
			rc = &models.RequestContext{}
		}

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("client_key", rc.ClientKey).
			Msg("request started")

		metrics.HTTPRequestsInFlight.Inc()
		defer func() {
			metrics.HTTPRequestsInFlight.Dec()
			rec := recover()

			status := lw.statusOr(http.StatusOK)
			if rec != nil && !lw.wroteHeader {
				status = http.StatusInternalServerError
			}
			duration := time.Since(start)
			route := routePattern(r)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())

			event := log.Info()
			if rec != nil {
				event = log.Error().Interface("panic", rec)
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("status", status).
				Str("error_kind", rc.ErrorKind).
				Dur("duration", duration).
				Int("size", lw.size).
				Interface("annotations", rc.Annotations).
				Msg("request finished")

			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}

// routePattern returns the chi route pattern the request matched, keeping
// metric label cardinality bounded.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return unmatchedRoute
}
