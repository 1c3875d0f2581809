// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Feature is the dashboard view of a Feature work item.
type Feature struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	State       string `json:"state"`
	AreaPath    string `json:"area_path"`
	Client      string `json:"client"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	ChangedDate string `json:"changed_date,omitempty"`
}

// Project is an upstream project.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	State       string `json:"state,omitempty"`
	URL         string `json:"url,omitempty"`
}

// FeatureState selects open or closed features.
type FeatureState string

const (
	FeatureStateOpen   FeatureState = "open"
	FeatureStateClosed FeatureState = "closed"
)
