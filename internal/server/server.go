package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/handler"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/workers"
)

type server struct {
	httpServer *httpServer
	background []workers.Worker
	logger     *logger.Logger
}

// NewServer creates the host for handlers. background workers, such as the
// rate limit sweeper, run alongside the HTTP server and stop with it.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, background ...workers.Worker) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{background: background, logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	all := append([]workers.Worker{s.httpServer}, s.background...)
	if err := workers.NewWorkers(all...).Run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
