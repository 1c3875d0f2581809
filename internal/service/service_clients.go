// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-farol/internal/adapter"
	"github.com/MKhiriev/go-farol/internal/logger"
)

type clientService struct {
	tracker     adapter.IssueTracker
	rootProject string

	logger *logger.Logger
}

// NewClientService returns a ClientService reading Epics of rootProject.
func NewClientService(tracker adapter.IssueTracker, rootProject string, log *logger.Logger) ClientService {
	return &clientService{tracker: tracker, rootProject: rootProject, logger: log}
}

func (s *clientService) ValidClients(ctx context.Context) ([]string, error) {
	ids, err := s.tracker.QueryWorkItemIDs(ctx, s.rootProject, epicsQuery(s.rootProject))
	if err != nil {
		return nil, fromUpstream(err)
	}
	if len(ids) == 0 {
		return []string{}, nil
	}

	epics, err := s.tracker.GetWorkItems(ctx, ids, epicFields)
	if err != nil {
		return nil, fromUpstream(err)
	}

	seen := make(map[string]struct{}, len(epics))
	clients := make([]string, 0, len(epics))
	for _, epic := range epics {
		name := clientFromAreaPath(epic.AreaPath())
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		clients = append(clients, name)
	}
	slices.Sort(clients)

	return clients, nil
}
