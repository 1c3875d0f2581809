// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-farol/internal/adapter"
	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/validators"
)

// fromUpstream translates an issue tracker error into a *DomainError.
// Errors that match no adapter sentinel are returned unchanged and end up
// as internal errors.
func fromUpstream(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return NotFound(app.MsgNotFound, err)
	case errors.Is(err, adapter.ErrBadQuery):
		return InvalidQuery(app.MsgInvalidQuery, err)
	case errors.Is(err, adapter.ErrUpstreamUnauthorized):
		return UpstreamUnavailable(app.MsgUpstreamUnauthorized, err)
	case errors.Is(err, adapter.ErrUpstreamUnreachable),
		errors.Is(err, adapter.ErrUpstreamFailure):
		return UpstreamUnavailable(app.MsgUpstreamUnavailable, err)
	case errors.Is(err, adapter.ErrMalformedResponse):
		return Calculation(app.MsgCalculationFailed, err)
	default:
		return err
	}
}

// fromValidation translates a validator failure into a KindValidation
// error carrying the failing field.
func fromValidation(err error, detail string) error {
	if err == nil {
		return nil
	}

	var fe *validators.FieldError
	if errors.As(err, &fe) {
		return Validation(fe.Field, detail, err)
	}

	return err
}
