// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Kind classifies a request-time failure. The HTTP layer maps each kind to a
// status code and error_code.
type Kind string

const (
	KindNotFound            Kind = "NOT_FOUND"
	KindInvalidQuery        Kind = "INVALID_QUERY"
	KindValidation          Kind = "VALIDATION"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindUpstreamUnavailable Kind = "UPSTREAM_UNAVAILABLE"
	KindCalculation         Kind = "CALCULATION"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenIsExpired        = errors.New("token is expired")
	ErrInvalidToken          = errors.New("invalid token")
	ErrNoSigningKey          = errors.New("no token signing key configured")
)

// DomainError is a request-time failure with a kind. Detail is safe to send
// to callers; Err carries the cause for logs.
type DomainError struct {
	Kind   Kind
	Detail string
	Field  string
	Err    error
}

func (e *DomainError) Error() string {
	msg := string(e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Field != "" {
		msg += " (field " + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches another *DomainError by Kind, so errors.Is(err,
// &DomainError{Kind: KindNotFound}) works.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind && t.Detail == "" && t.Field == "" && t.Err == nil
}

// KindOf returns the kind of the first *DomainError in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}

	return "", false
}

// NotFound returns a KindNotFound error.
func NotFound(detail string, err error) error {
	return &DomainError{Kind: KindNotFound, Detail: detail, Err: err}
}

// InvalidQuery returns a KindInvalidQuery error.
func InvalidQuery(detail string, err error) error {
	return &DomainError{Kind: KindInvalidQuery, Detail: detail, Err: err}
}

// Validation returns a KindValidation error naming field.
func Validation(field, detail string, err error) error {
	return &DomainError{Kind: KindValidation, Field: field, Detail: detail, Err: err}
}

// Unauthorized returns a KindUnauthorized error.
func Unauthorized(detail string, err error) error {
	return &DomainError{Kind: KindUnauthorized, Detail: detail, Err: err}
}

// UpstreamUnavailable returns a KindUpstreamUnavailable error.
func UpstreamUnavailable(detail string, err error) error {
	return &DomainError{Kind: KindUpstreamUnavailable, Detail: detail, Err: err}
}

// Calculation returns a KindCalculation error.
func Calculation(detail string, err error) error {
	return &DomainError{Kind: KindCalculation, Detail: detail, Err: fmt.Errorf("calculation: %w", err)}
}
