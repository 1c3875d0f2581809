package http

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Authorization, Content-Type, X-Request-ID"
	corsMaxAge       = "600"
)

// withCORS answers browser requests from the configured origins. Origins are
// matched exactly; a request from any other origin gets no CORS headers.
// A preflight from an allowed origin is answered with 204 without reaching
// the route.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	exposeHeaders := h.requestIDHeader + ", Retry-After"
	allowHeaders := corsAllowHeaders
	if !strings.EqualFold(h.requestIDHeader, "X-Request-ID") {
		allowHeaders += ", " + h.requestIDHeader
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !slices.Contains(h.allowedOrigins, origin) {
			next.ServeHTTP(w, r)
			return
		}

		header := w.Header()
		header.Add("Vary", "Origin")
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Expose-Headers", exposeHeaders)

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			header.Set("Access-Control-Allow-Methods", corsAllowMethods)
			header.Set("Access-Control-Allow-Headers", allowHeaders)
			header.Set("Access-Control-Max-Age", corsMaxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
