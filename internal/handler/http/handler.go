package http

import (
	"net/netip"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/ratelimit"
	"github.com/MKhiriev/go-farol/internal/service"
	"github.com/MKhiriev/go-farol/internal/utils"
)

type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter

	requestIDHeader string
	trustedProxies  []netip.Prefix
	allowedOrigins  []string
	metricsEnabled  bool
	debug           bool

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. limiter is shared with the sweeper
// worker.
func NewHandler(services *service.Services, limiter *ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	requestIDHeader := cfg.Server.RequestIDHeader
	if requestIDHeader == "" {
		requestIDHeader = config.DefaultRequestIDHeader
	}

	trustedProxies, err := utils.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewHandler").Msg("ignoring trusted proxies, keying callers by connection address")
		trustedProxies = nil
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		limiter:         limiter,
		requestIDHeader: requestIDHeader,
		trustedProxies:  trustedProxies,
		allowedOrigins:  cfg.CORS.AllowedOrigins,
		metricsEnabled:  cfg.MetricsEnabled(),
		debug:           cfg.App.Debug,
		logger:          logger,
	}
}
