package http

import "net/http"

// Stage is one step of the request pipeline.
type Stage func(http.Handler) http.Handler

// pipeline returns the stages in execution order, outermost first:
//
//	identity -> logging -> rate limit -> translation -> CORS -> dispatcher
//
// The order is fixed. Identity runs first so every later stage, including
// the access log of rejected requests, sees the correlation ID and client
// key. Rate limiting short-circuits before translation and dispatch.
func (h *Handler) pipeline() []Stage {
	return []Stage{
		h.withIdentity,
		h.withLogging,
		h.withRateLimit,
		h.withTranslation,
		h.withCORS,
	}
}
