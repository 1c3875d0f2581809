package http

import (
	"net/http"

	"github.com/MKhiriev/go-farol/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
	return err
}
