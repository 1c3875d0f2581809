package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router with every pipeline stage installed. Stages wrap
// the NotFound and MethodNotAllowed handlers too, so those responses carry
// the request ID and the structured payload.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	for _, stage := range h.pipeline() {
		router.Use(stage)
	}

	router.NotFound(h.dispatch(h.notFound))
	router.MethodNotAllowed(h.dispatch(h.methodNotAllowed))

	// exempt from the rate limit
	router.Get("/", h.dispatch(h.health))
	router.Get("/health", h.dispatch(h.health))
	if h.metricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Post("/webhooks/azure-devops", h.dispatch(h.receiveWebhook))

	router.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.dispatch(h.listProjects))

		r.Route("/features", func(r chi.Router) {
			r.Get("/open", h.dispatch(h.listOpenFeatures))
			r.Get("/closed", h.dispatch(h.listClosedFeatures))
		})

		r.Route("/work-items", func(r chi.Router) {
			r.Post("/query", h.dispatch(h.queryWorkItems))
			r.Get("/{id}", h.dispatch(h.getWorkItem))
		})

		r.Get("/v2/clients/valid", h.dispatch(h.listValidClients))

		r.Get("/webhooks/events", h.dispatch(h.requireIdentity(h.listWebhookEvents)))

		if h.debug {
			r.Route("/debug", func(r chi.Router) {
				r.Post("/token", h.dispatch(h.issueDebugToken))
				r.Get("/request-context", h.dispatch(h.requireIdentity(h.showRequestContext)))
			})
		}
	})

	return router
}
