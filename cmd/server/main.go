package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-farol/internal/adapter"
	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/handler"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/ratelimit"
	"github.com/MKhiriev/go-farol/internal/server"
	"github.com/MKhiriev/go-farol/internal/service"
	"github.com/MKhiriev/go-farol/internal/store"
	"github.com/MKhiriev/go-farol/models"
	"github.com/urfave/cli/v3"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cmd := &cli.Command{
		Name:    "farol-server",
		Usage:   "delivery dashboard API over the issue tracker",
		Version: buildVersion,
		Flags:   config.Flags(),
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server (default)",
				Action: serve,
			},
			{
				Name:   "check-config",
				Usage:  "validate the configuration and exit",
				Action: checkConfig,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	log := logger.NewLogger("farol-server")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	tracker, err := adapter.NewHTTPIssueTracker(cfg.Upstream, log)
	if err != nil {
		return fmt.Errorf("error creating issue tracker adapter: %w", err)
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(tracker, storages, cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	limiter := ratelimit.New(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.BurstSize)
	handlers, err := handler.NewHandlers(services, limiter, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	sweeper := ratelimit.NewSweeper(limiter, cfg.RateLimit.SweepInterval, cfg.RateLimit.IdleTTL, log)
	srv, err := server.NewServer(handlers, cfg.Server, log, sweeper)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	log.Info().
		Str("version", build.BuildVersion()).
		Str("address", cfg.Server.HTTPAddress).
		Str("database", cfg.Storage.DB.Engine().String()).
		Msg("starting server")

	return srv.RunServer()
}

func checkConfig(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Println("configuration is valid")
	fmt.Printf("database engine: %s\n", cfg.Storage.DB.Engine())
	fmt.Printf("production mode: %t\n", cfg.IsProduction())
	return nil
}

// loadConfig merges the CLI flags, the environment (completed by the dotenv
// file), the optional config file and the defaults.
func loadConfig(cmd *cli.Command) (*config.StructuredConfig, error) {
	overrides, err := config.OverridesFromCommand(cmd)
	if err != nil {
		return nil, err
	}

	source, err := config.FromDotEnv(cmd.String(config.FlagEnvFile), config.FromEnviron(os.Environ()))
	if err != nil {
		return nil, err
	}

	return config.NewSourceProvider(source, overrides).Get()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
