// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the domain operations behind the HTTP routes. Every
// request-time failure leaves this package as a *DomainError with a [Kind];
// issue tracker and storage errors are translated here so the transport
// layer never inspects them.
package service

import (
	"context"

	"github.com/MKhiriev/go-farol/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService verifies and issues identity tokens.
type IdentityService interface {
	// Identify verifies token and returns the caller it names. Fails with
	// KindUnauthorized.
	Identify(ctx context.Context, token string) (models.Identity, error)

	// IssueToken signs a token for email.
	IssueToken(ctx context.Context, email string) (models.TokenResponse, error)
}

// FeatureService lists Feature work items of the root project.
type FeatureService interface {
	// ListFeatures returns features in state, restricted to the client of
	// identity unless identity is nil or an admin.
	ListFeatures(ctx context.Context, state models.FeatureState, identity *models.Identity) ([]models.Feature, error)
}

// ProjectService lists upstream projects.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// WorkItemService reads work items.
type WorkItemService interface {
	// GetWorkItem returns one work item. Fails with KindValidation for a
	// non-positive id and KindNotFound for an unknown one.
	GetWorkItem(ctx context.Context, id int64) (models.WorkItem, error)

	// Query runs a passthrough query in the root project and hydrates the
	// matches.
	Query(ctx context.Context, request models.WorkItemQueryRequest) (models.WorkItemQueryResponse, error)
}

// ClientService lists client names.
type ClientService interface {
	// ValidClients returns the sorted distinct client names found on Epic
	// area paths.
	ValidClients(ctx context.Context) ([]string, error)
}

// WebhookService stores and lists issue tracker notifications.
type WebhookService interface {
	// Receive stores payload. A redelivered event is acknowledged with
	// status "duplicate" and not stored again.
	Receive(ctx context.Context, payload []byte, correlationID string) (models.WebhookAck, error)

	// ListRecent returns the most recent events, newest first.
	ListRecent(ctx context.Context, query models.WebhookEventsQuery) ([]models.WebhookEvent, error)
}

// AppInfoService reports the application name and version.
type AppInfoService interface {
	Health(ctx context.Context) models.HealthResponse
}
