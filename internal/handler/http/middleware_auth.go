// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/service"
	"github.com/MKhiriev/go-farol/internal/utils"
)

// requireIdentity wraps a dispatcher that needs a verified caller. The
// identity stage has already checked the token; requests it left anonymous
// fail with UNAUTHORIZED.
func (h *Handler) requireIdentity(next dispatchFunc) dispatchFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		rc, ok := utils.RequestContextFrom(r.Context())
		if !ok || rc.Identity == nil {
			return service.Unauthorized(app.MsgUnauthorized, ErrIdentityRequired)
		}

		return next(w, r)
	}
}
