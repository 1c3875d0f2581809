package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		origin          string
		preflightMethod string
		wantStatus      int
		wantAllowOrigin string
		wantNextCalled  bool
	}{
		{
			name:           "no origin",
			method:         http.MethodGet,
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:            "allowed origin",
			method:          http.MethodGet,
			origin:          testOrigin,
			wantStatus:      http.StatusOK,
			wantAllowOrigin: testOrigin,
			wantNextCalled:  true,
		},
		{
			name:           "unknown origin gets no headers",
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:            "preflight from allowed origin",
			method:          http.MethodOptions,
			origin:          testOrigin,
			preflightMethod: http.MethodPost,
			wantStatus:      http.StatusNoContent,
			wantAllowOrigin: testOrigin,
		},
		{
			name:            "preflight from unknown origin reaches router",
			method:          http.MethodOptions,
			origin:          "https://evil.example.com",
			preflightMethod: http.MethodPost,
			wantStatus:      http.StatusOK,
			wantNextCalled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			nextCalled := false
			handler := h.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/api/projects", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflightMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.preflightMethod)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantAllowOrigin != "" {
				assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-ID")
			}
			if tt.wantStatus == http.StatusNoContent {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			}
		})
	}
}
