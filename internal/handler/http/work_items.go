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
	"github.com/go-chi/chi/v5"
)

// getWorkItem serves GET /api/work-items/{id}.
func (h *Handler) getWorkItem(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return service.Validation("id", app.MsgInvalidWorkItemID, err)
	}

	workItem, err := h.services.WorkItemService.GetWorkItem(r.Context(), id)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, workItem, http.StatusOK)
	return err
}

// queryWorkItems serves POST /api/work-items/query. The query text is passed
// to the issue tracker unchanged.
func (h *Handler) queryWorkItems(w http.ResponseWriter, r *http.Request) error {
	var request models.WorkItemQueryRequest
	if err := decodeJSON(w, r, &request); err != nil {
		return err
	}

	response, err := h.services.WorkItemService.Query(r.Context(), request)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, response, http.StatusOK)
	return err
}
