// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Well-known work item field reference names.
const (
	FieldTitle        = "System.Title"
	FieldState        = "System.State"
	FieldWorkItemType = "System.WorkItemType"
	FieldAreaPath     = "System.AreaPath"
	FieldAssignedTo   = "System.AssignedTo"
	FieldChangedDate  = "System.ChangedDate"
	FieldTeamProject  = "System.TeamProject"
)

// Work item types used by the dashboard.
const (
	WorkItemTypeFeature = "Feature"
	WorkItemTypeEpic    = "Epic"
)

// WorkItem is an upstream work item as returned by the work items API.
type WorkItem struct {
	ID     int64          `json:"id"`
	Rev    int            `json:"rev"`
	Fields map[string]any `json:"fields"`
	URL    string         `json:"url,omitempty"`
}

// Title returns System.Title.
func (w WorkItem) Title() string { return w.stringField(FieldTitle) }

// State returns System.State.
func (w WorkItem) State() string { return w.stringField(FieldState) }

// Type returns System.WorkItemType.
func (w WorkItem) Type() string { return w.stringField(FieldWorkItemType) }

// AreaPath returns System.AreaPath.
func (w WorkItem) AreaPath() string { return w.stringField(FieldAreaPath) }

// ChangedDate returns System.ChangedDate as sent upstream.
func (w WorkItem) ChangedDate() string { return w.stringField(FieldChangedDate) }

// AssignedTo returns the display name of System.AssignedTo. The field is an
// identity object upstream but older API versions send a plain string.
func (w WorkItem) AssignedTo() string {
	switch v := w.Fields[FieldAssignedTo].(type) {
	case string:
		return v
	case map[string]any:
		if name, ok := v["displayName"].(string); ok {
			return name
		}
	}

	return ""
}

func (w WorkItem) stringField(name string) string {
	switch v := w.Fields[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
