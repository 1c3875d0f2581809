// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WorkItemQueryRequest is the body of the passthrough query route. Query is
// sent to the issue tracker unchanged.
type WorkItemQueryRequest struct {
	Query string `json:"query"`
}

// WorkItemQueryResponse lists the work items a passthrough query matched.
type WorkItemQueryResponse struct {
	IDs       []int64    `json:"ids"`
	WorkItems []WorkItem `json:"work_items"`
	Length    int        `json:"length"`
}

// TokenRequest asks the debug route for an identity token.
type TokenRequest struct {
	Email string `json:"email"`
}

// TokenResponse carries an issued identity token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// WebhookEventsQuery selects recent webhook events.
type WebhookEventsQuery struct {
	Limit int
}

// ClientsResponse lists the known client names.
type ClientsResponse struct {
	Clients []string `json:"clients"`
	Count   int      `json:"count"`
}
