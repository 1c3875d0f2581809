package http

import (
	"net/http"

	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
)

func (h *Handler) listValidClients(w http.ResponseWriter, r *http.Request) error {
	clients, err := h.services.ClientService.ValidClients(r.Context())
	if err != nil {
		return err
	}
	if clients == nil {
		clients = []string{}
	}

	_, err = utils.WriteJSON(w, models.ClientsResponse{Clients: clients, Count: len(clients)}, http.StatusOK)
	return err
}
