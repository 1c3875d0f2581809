// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the upstream issue tracker (Azure
// DevOps REST API).
//
// The primary abstraction is [IssueTracker], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPIssueTracker]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUpstreamUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-farol/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/issue_tracker_mock.go -package=mock

// IssueTracker defines read access to the upstream issue tracker.
// Implementations are responsible for serialisation, authentication and
// mapping transport-level errors to the sentinel values defined in this
// package. No implementation retries on its own.
type IssueTracker interface {
	// QueryWorkItemIDs runs a WIQL query in project and returns the ids of
	// the matching work items in upstream order. The query text is passed
	// through as-is.
	QueryWorkItemIDs(ctx context.Context, project, wiql string) ([]int64, error)

	// GetWorkItems hydrates ids, requesting only fields when non-empty.
	// Large id lists are fetched in batches.
	GetWorkItems(ctx context.Context, ids []int64, fields []string) ([]models.WorkItem, error)

	// GetWorkItem returns one work item with all of its fields. Returns
	// [ErrNotFound] when the id does not exist.
	GetWorkItem(ctx context.Context, id int64) (models.WorkItem, error)

	// ListProjects returns the projects of the organization.
	ListProjects(ctx context.Context) ([]models.Project, error)
}
