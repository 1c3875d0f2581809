package http

import (
	"net/http"

	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
)

// issueDebugToken signs a token for the posted email. Registered only in
// debug mode.
func (h *Handler) issueDebugToken(w http.ResponseWriter, r *http.Request) error {
	var request models.TokenRequest
	if err := decodeJSON(w, r, &request); err != nil {
		return err
	}

	token, err := h.services.IdentityService.IssueToken(r.Context(), request.Email)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, token, http.StatusOK)
	return err
}

// showRequestContext echoes the request context built by the pipeline.
func (h *Handler) showRequestContext(w http.ResponseWriter, r *http.Request) error {
	rc, _ := utils.RequestContextFrom(r.Context())

	_, err := utils.WriteJSON(w, rc, http.StatusOK)
	return err
}
