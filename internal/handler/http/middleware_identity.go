// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
	"github.com/rs/zerolog"
)

const (
	clientKeyUserPrefix = "user:"
	clientKeyIPPrefix   = "ip:"

	tokenQueryParam = "token"
)

// withIdentity is the first pipeline stage. It assigns the correlation ID,
// resolves the caller and attaches the [models.RequestContext] and a
// request-scoped logger carrying "request_id" to the context.
//
// An inbound ID in the request ID header is kept when it is well formed;
// otherwise a new one is generated. The ID is echoed in the response header
// before the next stage runs, so it is present on every response.
//
// The stage never fails: a missing or invalid token leaves the caller
// anonymous and keyed by address.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(h.requestIDHeader)
		if !utils.IsValidRequestID(requestID) {
			requestID = utils.NewRequestID()
		}

		rc := &models.RequestContext{
			ID:        requestID,
			StartedAt: time.Now(),
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx := l.WithContext(r.Context())

		if identity, ok := h.identify(r.WithContext(ctx)); ok {
			rc.Identity = &identity
			rc.ClientKey = clientKeyUserPrefix + identity.Email
			rc.Annotate("identity", "verified")
		} else {
			rc.ClientKey = clientKeyIPPrefix + utils.ClientIP(r, h.trustedProxies)
			rc.Annotate("identity", "anonymous")
		}

		ctx = utils.WithRequestContext(ctx, rc)
		w.Header().Set(h.requestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identify verifies the bearer token of r, taken from the Authorization
// header or the token query parameter.
func (h *Handler) identify(r *http.Request) (models.Identity, bool) {
	if h.services == nil || h.services.IdentityService == nil {
		return models.Identity{}, false
	}

	token := r.URL.Query().Get(tokenQueryParam)
	if header := r.Header.Get("Authorization"); header != "" {
		if bearer, err := utils.ParseBearerToken(header); err == nil {
			token = bearer
		}
	}
	if token == "" {
		return models.Identity{}, false
	}

	identity, err := h.services.IdentityService.Identify(r.Context(), token)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("token rejected, continuing as anonymous")
		return models.Identity{}, false
	}

	return identity, true
}
