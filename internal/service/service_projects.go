// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-farol/internal/adapter"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/models"
	"golang.org/x/sync/singleflight"
)

// projectService serves the project list from a TTL cache. Concurrent
// misses share a single upstream call; failures are not cached.
type projectService struct {
	tracker adapter.IssueTracker
	ttl     time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	projects  []models.Project
	fetchedAt time.Time

	group  singleflight.Group
	logger *logger.Logger
}

// NewProjectService returns a ProjectService caching for ttl. A
// non-positive ttl disables caching.
func NewProjectService(tracker adapter.IssueTracker, ttl time.Duration, log *logger.Logger) ProjectService {
	return &projectService{tracker: tracker, ttl: ttl, now: time.Now, logger: log}
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	if projects, ok := s.cached(); ok {
		return projects, nil
	}

	// Shared by every waiter; not bound to the first caller's cancellation.
	fetchCtx := context.WithoutCancel(ctx)
	result, err, shared := s.group.Do("projects", func() (any, error) {
		projects, err := s.tracker.ListProjects(fetchCtx)
		if err != nil {
			return nil, err
		}
		s.store(projects)
		return projects, nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.ListProjects").Msg("listing projects failed")
		return nil, fromUpstream(err)
	}

	logger.FromContext(ctx).Debug().Bool("shared", shared).Msg("project list refreshed")
	return result.([]models.Project), nil
}

func (s *projectService) cached() ([]models.Project, bool) {
	if s.ttl <= 0 {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.projects == nil || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}

	return s.projects, true
}

func (s *projectService) store(projects []models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = projects
	s.fetchedAt = s.now()
}
