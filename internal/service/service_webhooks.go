// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/store"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/internal/validators"
	"github.com/MKhiriev/go-farol/models"
)

// Webhook acknowledgement statuses.
const (
	WebhookAccepted  = "accepted"
	WebhookDuplicate = "duplicate"
)

// serviceHookEnvelope holds the parts of a service hook notification that
// are indexed. Everything else stays in the raw payload.
type serviceHookEnvelope struct {
	ID        json.RawMessage `json:"id"`
	EventType string          `json:"eventType"`
	Resource  struct {
		ID         json.RawMessage `json:"id"`
		WorkItemID json.RawMessage `json:"workItemId"`
	} `json:"resource"`
}

type webhookService struct {
	repository store.WebhookEventRepository
	validator  validators.Validator
	hasher     *utils.PayloadHasher
	now        func() time.Time

	logger *logger.Logger
}

// NewWebhookService returns a WebhookService storing events in repository.
// hasher derives ids for notifications that carry none.
func NewWebhookService(repository store.WebhookEventRepository, validator validators.Validator, hasher *utils.PayloadHasher, log *logger.Logger) WebhookService {
	return &webhookService{
		repository: repository,
		validator:  validator,
		hasher:     hasher,
		now:        time.Now,
		logger:     log,
	}
}

func (s *webhookService) Receive(ctx context.Context, payload []byte, correlationID string) (models.WebhookAck, error) {
	log := logger.FromContext(ctx)

	event, err := s.parse(payload)
	if err != nil {
		return models.WebhookAck{}, err
	}
	event.CorrelationID = correlationID
	event.ReceivedAt = s.now().UTC()

	err = s.repository.Save(ctx, event)
	switch {
	case errors.Is(err, store.ErrDuplicateEvent):
		log.Info().Str("event_id", event.EventID).Msg("duplicate webhook delivery ignored")
		return models.WebhookAck{EventID: event.EventID, Status: WebhookDuplicate}, nil
	case err != nil:
		log.Err(err).Str("func", "*webhookService.Receive").Str("event_id", event.EventID).Msg("storing webhook event failed")
		return models.WebhookAck{}, fmt.Errorf("store webhook event: %w", err)
	}

	log.Info().Str("event_id", event.EventID).Str("event_type", event.EventType).Int64("resource_id", event.ResourceID).Msg("webhook event stored")
	return models.WebhookAck{EventID: event.EventID, Status: WebhookAccepted}, nil
}

func (s *webhookService) parse(payload []byte) (models.WebhookEvent, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return models.WebhookEvent{}, Validation("body", app.MsgInvalidWebhookPayload, validators.ErrInvalidPayload)
	}

	var envelope serviceHookEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return models.WebhookEvent{}, Validation("body", app.MsgInvalidWebhookPayload, errors.Join(validators.ErrInvalidPayload, err))
	}

	event := models.WebhookEvent{
		EventID:    scalarString(envelope.ID),
		EventType:  envelope.EventType,
		ResourceID: scalarInt(envelope.Resource.WorkItemID),
		Payload:    json.RawMessage(trimmed),
	}
	if event.EventID == "" {
		event.EventID = s.hasher.Sum(trimmed)
	}
	if event.EventType == "" {
		event.EventType = "unknown"
	}
	if event.ResourceID == 0 {
		event.ResourceID = scalarInt(envelope.Resource.ID)
	}

	return event, nil
}

// scalarString returns a JSON string or number as text, and "" for anything
// else.
func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// scalarInt returns a JSON integer, or a string holding one, and 0 for
// anything else.
func scalarInt(raw json.RawMessage) int64 {
	id, err := strconv.ParseInt(scalarString(raw), 10, 64)
	if err != nil {
		return 0
	}

	return id
}

func (s *webhookService) ListRecent(ctx context.Context, query models.WebhookEventsQuery) ([]models.WebhookEvent, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, fromValidation(err, app.MsgInvalidLimit)
	}

	events, err := s.repository.ListRecent(ctx, query.Limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*webhookService.ListRecent").Msg("listing webhook events failed")
		return nil, fmt.Errorf("list webhook events: %w", err)
	}

	return events, nil
}
