// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// ErrorCode is a stable machine-readable code, e.g. "NOT_FOUND".
	ErrorCode string `json:"error_code"`

	// Message is a human-readable description safe to show to callers.
	Message string `json:"message"`

	// CorrelationID is the request ID the error belongs to.
	CorrelationID string `json:"correlation_id"`

	// RetryAfterSeconds is set on rate-limit rejections only.
	RetryAfterSeconds *float64 `json:"retry_after_seconds,omitempty"`

	// Field names the offending input on validation errors.
	Field string `json:"field,omitempty"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version,omitempty"`
}

// ListResponse wraps a list result with its length.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Length int `json:"length"`
}

// NewListResponse builds a ListResponse; a nil slice is returned as empty.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return ListResponse[T]{Items: items, Length: len(items)}
}

// WebhookAck is returned by the webhook receiver.
type WebhookAck struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}
