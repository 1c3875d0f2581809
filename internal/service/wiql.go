// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-farol/models"
)

const closedState = "Closed"

// featureFields are requested when hydrating features.
var featureFields = []string{
	models.FieldTitle,
	models.FieldState,
	models.FieldWorkItemType,
	models.FieldAreaPath,
	models.FieldAssignedTo,
	models.FieldChangedDate,
}

// epicFields are requested when hydrating epics for client names.
var epicFields = []string{
	models.FieldTitle,
	models.FieldAreaPath,
}

// quoteWIQL renders s as a WIQL string literal.
func quoteWIQL(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func featuresQuery(project string, state models.FeatureState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT [System.Id] FROM workitems WHERE [%s] = %s AND [%s] = %s",
		models.FieldTeamProject, quoteWIQL(project),
		models.FieldWorkItemType, quoteWIQL(models.WorkItemTypeFeature))

	switch state {
	case models.FeatureStateClosed:
		fmt.Fprintf(&b, " AND [%s] = %s", models.FieldState, quoteWIQL(closedState))
	default:
		fmt.Fprintf(&b, " AND [%s] <> %s", models.FieldState, quoteWIQL(closedState))
	}
	fmt.Fprintf(&b, " ORDER BY [%s] DESC", models.FieldChangedDate)

	return b.String()
}

func epicsQuery(project string) string {
	return fmt.Sprintf("SELECT [System.Id] FROM workitems WHERE [%s] = %s AND [%s] = %s",
		models.FieldTeamProject, quoteWIQL(project),
		models.FieldWorkItemType, quoteWIQL(models.WorkItemTypeEpic))
}
