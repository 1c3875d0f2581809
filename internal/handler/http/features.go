package http

import (
	"net/http"

	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/models"
)

func (h *Handler) listOpenFeatures(w http.ResponseWriter, r *http.Request) error {
	return h.listFeatures(w, r, models.FeatureStateOpen)
}

func (h *Handler) listClosedFeatures(w http.ResponseWriter, r *http.Request) error {
	return h.listFeatures(w, r, models.FeatureStateClosed)
}

// listFeatures lists features in state. The caller's identity, if any,
// restricts the result to its client.
func (h *Handler) listFeatures(w http.ResponseWriter, r *http.Request, state models.FeatureState) error {
	var identity *models.Identity
	if rc, ok := utils.RequestContextFrom(r.Context()); ok {
		identity = rc.Identity
	}

	features, err := h.services.FeatureService.ListFeatures(r.Context(), state, identity)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.NewListResponse(features), http.StatusOK)
	return err
}
