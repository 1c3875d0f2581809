// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-farol/internal/app"
	"github.com/MKhiriev/go-farol/internal/service"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
)

const defaultWebhookEventsLimit = 50

// receiveWebhook stores a service hook notification. A new event is answered
// with 202, a redelivery with 200 and status "duplicate".
func (h *Handler) receiveWebhook(w http.ResponseWriter, r *http.Request) error {
	payload, err := readBody(w, r)
	if err != nil {
		return err
	}

	ack, err := h.services.WebhookService.Receive(r.Context(), payload, utils.RequestIDFrom(r.Context()))
	if err != nil {
		return err
	}

	status := http.StatusAccepted
	if ack.Status == service.WebhookDuplicate {
		status = http.StatusOK
	}

	_, err = utils.WriteJSON(w, ack, status)
	return err
}

// listWebhookEvents serves GET /api/webhooks/events?limit=N.
func (h *Handler) listWebhookEvents(w http.ResponseWriter, r *http.Request) error {
	query := models.WebhookEventsQuery{Limit: defaultWebhookEventsLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return service.Validation("limit", app.MsgInvalidLimit, err)
		}
		query.Limit = limit
	}

	events, err := h.services.WebhookService.ListRecent(r.Context(), query)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.NewListResponse(events), http.StatusOK)
	return err
}
