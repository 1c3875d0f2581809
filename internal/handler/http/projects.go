package http

import (
	"net/http"

	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) error {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.NewListResponse(projects), http.StatusOK)
	return err
}
