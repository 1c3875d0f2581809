package handler

import (
	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/handler/http"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/ratelimit"
	"github.com/MKhiriev/go-farol/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. limiter is the
// shared rate limiter; it may be nil to disable rate limiting.
func NewHandlers(services *service.Services, limiter *ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
