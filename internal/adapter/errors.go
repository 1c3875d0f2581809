package adapter

import "errors"

var (
	ErrUpstreamUnreachable  = errors.New("issue tracker unreachable")
	ErrUpstreamUnauthorized = errors.New("issue tracker rejected credentials")
	ErrBadQuery             = errors.New("issue tracker rejected query")
	ErrNotFound             = errors.New("not found in issue tracker")
	ErrUpstreamFailure      = errors.New("issue tracker failure")

	ErrMalformedResponse = errors.New("malformed issue tracker response")
	ErrNoCredentials     = errors.New("no issue tracker credentials configured")
)
