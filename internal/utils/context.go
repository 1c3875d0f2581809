// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, request
// identifiers, client addresses, HTTP response writing, HTTP client
// initialization, and identity token signing and verification.
package utils

import (
	"context"

	"github.com/MKhiriev/go-farol/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestContextCtxKey is the key the per-request [models.RequestContext] is
// stored under.
var RequestContextCtxKey = contextKey("requestContext")

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *models.RequestContext) context.Context {
	return context.WithValue(ctx, RequestContextCtxKey, rc)
}

// RequestContextFrom retrieves the request context stored by
// WithRequestContext.
//
//   - ok == true : value is found and has the correct type
//   - ok == false: value is missing
func RequestContextFrom(ctx context.Context) (*models.RequestContext, bool) {
	rc, ok := ctx.Value(RequestContextCtxKey).(*models.RequestContext)
	return rc, ok && rc != nil
}

// RequestIDFrom returns the correlation ID of the request ctx belongs to, or
// an empty string.
func RequestIDFrom(ctx context.Context) string {
	if rc, ok := RequestContextFrom(ctx); ok {
		return rc.ID
	}

	return ""
}
