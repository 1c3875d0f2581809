// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-farol/internal/adapter"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/models"
)

type featureService struct {
	tracker     adapter.IssueTracker
	rootProject string

	logger *logger.Logger
}

// NewFeatureService returns a FeatureService reading from rootProject.
func NewFeatureService(tracker adapter.IssueTracker, rootProject string, log *logger.Logger) FeatureService {
	return &featureService{tracker: tracker, rootProject: rootProject, logger: log}
}

// ListFeatures runs the feature query, hydrates the matches and drops those
// the caller may not see. A nil identity or an admin sees every feature.
func (s *featureService) ListFeatures(ctx context.Context, state models.FeatureState, identity *models.Identity) ([]models.Feature, error) {
	log := logger.FromContext(ctx)

	ids, err := s.tracker.QueryWorkItemIDs(ctx, s.rootProject, featuresQuery(s.rootProject, state))
	if err != nil {
		log.Err(err).Str("func", "*featureService.ListFeatures").Msg("feature query failed")
		return nil, fromUpstream(err)
	}

	items, err := s.tracker.GetWorkItems(ctx, ids, featureFields)
	if err != nil {
		log.Err(err).Str("func", "*featureService.ListFeatures").Msg("feature hydration failed")
		return nil, fromUpstream(err)
	}

	client := ""
	if identity != nil && !identity.IsAdmin {
		client = identity.Client
	}

	features := make([]models.Feature, 0, len(items))
	for _, item := range items {
		if !visibleTo(item.AreaPath(), client) {
			continue
		}
		features = append(features, toFeature(item))
	}

	log.Debug().Str("state", string(state)).Int("matched", len(items)).Int("visible", len(features)).Msg("features listed")
	return features, nil
}

func toFeature(item models.WorkItem) models.Feature {
	return models.Feature{
		ID:          item.ID,
		Title:       item.Title(),
		State:       item.State(),
		AreaPath:    item.AreaPath(),
		Client:      clientFromAreaPath(item.AreaPath()),
		AssignedTo:  item.AssignedTo(),
		ChangedDate: item.ChangedDate(),
	}
}
