// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-farol handlers, middleware and services.
//
// All Msg* constants are human-readable message strings that are written into
// error response bodies or log entries. Keeping them in one place ensures
// consistent wording throughout the API. Code* constants are the stable
// machine-readable error_code values of the error payload.
package app

// Error codes of the error payload.
const (
	CodeNotFound                     = "NOT_FOUND"
	CodeInvalidQuery                 = "INVALID_QUERY"
	CodeValidationError              = "VALIDATION_ERROR"
	CodeUnauthorized                 = "UNAUTHORIZED"
	CodeServiceDependencyUnavailable = "SERVICE_DEPENDENCY_UNAVAILABLE"
	CodeCalculationFailed            = "CALCULATION_FAILED"
	CodeMethodNotAllowed             = "METHOD_NOT_ALLOWED"
	CodeRateLimitExceeded            = "RATE_LIMIT_EXCEEDED"
	CodeInternalError                = "INTERNAL_ERROR"
)

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. Details stay in the logs.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned when a route or resource does not exist.
	MsgNotFound = "resource not found"

	// MsgMethodNotAllowed is returned when the route exists but not for the
	// request method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgRateLimitExceeded is returned with 429 responses.
	MsgRateLimitExceeded = "rate limit exceeded, retry later"

	// MsgUnauthorized is returned when a route requires an identity and the
	// request carries no valid token.
	MsgUnauthorized = "missing or invalid credentials"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUpstreamUnavailable is returned when the issue tracker cannot be
	// reached or fails.
	MsgUpstreamUnavailable = "issue tracker is unavailable"

	// MsgUpstreamUnauthorized is returned when the issue tracker rejects the
	// configured credential.
	MsgUpstreamUnauthorized = "issue tracker rejected the configured credentials"

	// MsgInvalidQuery is returned when the issue tracker rejects a query.
	MsgInvalidQuery = "query rejected by issue tracker"

	// MsgCalculationFailed is returned when a derived value cannot be
	// computed from upstream data.
	MsgCalculationFailed = "could not compute result from upstream data"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgQueryIsRequired is returned when a passthrough query is empty.
	MsgQueryIsRequired = "query is required"

	// MsgQueryTooLong is returned when a passthrough query exceeds the
	// accepted length.
	MsgQueryTooLong = "query is too long"

	// MsgInvalidWorkItemID is returned when a work item id is not a positive
	// integer.
	MsgInvalidWorkItemID = "work item id must be a positive integer"

	// MsgInvalidLimit is returned when a list limit is out of range.
	MsgInvalidLimit = "limit must be between 1 and 500"

	// MsgInvalidEmail is returned when an email is missing or malformed.
	MsgInvalidEmail = "a valid email is required"

	// MsgInvalidWebhookPayload is returned when a webhook body is not a JSON
	// object.
	MsgInvalidWebhookPayload = "webhook payload must be a JSON object"
)
