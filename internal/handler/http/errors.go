// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrRouteNotFound is reported when no route matches the request path.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is reported when the path matches a route that does
	// not handle the request method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIdentityRequired is reported by routes that need a verified caller
	// when the request carries none.
	ErrIdentityRequired = errors.New("identity required")

	// ErrPanicRecovered wraps the value of a recovered handler panic.
	ErrPanicRecovered = errors.New("panic recovered")
)
