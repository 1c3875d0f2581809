// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// WebhookEvent is a service hook notification received from the issue
// tracker and stored as-is.
type WebhookEvent struct {
	// EventID is the notification id sent by the tracker. Redeliveries carry
	// the same id.
	EventID string `json:"event_id"`

	// EventType is e.g. "workitem.updated".
	EventType string `json:"event_type"`

	// ResourceID is the work item id the event refers to, when present.
	ResourceID int64 `json:"resource_id,omitempty"`

	// Payload is the raw request body.
	Payload json.RawMessage `json:"payload"`

	// CorrelationID is the request ID of the delivery that stored it.
	CorrelationID string `json:"correlation_id"`

	ReceivedAt time.Time `json:"received_at"`
}
