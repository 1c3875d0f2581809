// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-farol/internal/adapter"
	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/validators"
	"github.com/MKhiriev/go-farol/models"
)

type workItemService struct {
	tracker     adapter.IssueTracker
	validator   validators.Validator
	rootProject string

	logger *logger.Logger
}

// NewWorkItemService returns a WorkItemService running queries in
// rootProject.
func NewWorkItemService(tracker adapter.IssueTracker, validator validators.Validator, rootProject string, log *logger.Logger) WorkItemService {
	return &workItemService{tracker: tracker, validator: validator, rootProject: rootProject, logger: log}
}

func (s *workItemService) GetWorkItem(ctx context.Context, id int64) (models.WorkItem, error) {
	if err := s.validator.Validate(ctx, id); err != nil {
		return models.WorkItem{}, fromValidation(err, app.MsgInvalidWorkItemID)
	}

	item, err := s.tracker.GetWorkItem(ctx, id)
	if err != nil {
		return models.WorkItem{}, fromUpstream(err)
	}

	return item, nil
}

func (s *workItemService) Query(ctx context.Context, request models.WorkItemQueryRequest) (models.WorkItemQueryResponse, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		detail := app.MsgQueryIsRequired
		if len(request.Query) > validators.MaxQueryLength {
			detail = app.MsgQueryTooLong
		}
		return models.WorkItemQueryResponse{}, fromValidation(err, detail)
	}

	ids, err := s.tracker.QueryWorkItemIDs(ctx, s.rootProject, request.Query)
	if err != nil {
		return models.WorkItemQueryResponse{}, fromUpstream(err)
	}

	items, err := s.tracker.GetWorkItems(ctx, ids, nil)
	if err != nil {
		return models.WorkItemQueryResponse{}, fromUpstream(err)
	}

	logger.FromContext(ctx).Debug().Int("matched", len(ids)).Msg("passthrough query executed")
	return models.WorkItemQueryResponse{IDs: ids, WorkItems: items, Length: len(items)}, nil
}
