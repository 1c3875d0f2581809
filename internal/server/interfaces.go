package server

import "context"

// Server defines the lifecycle contract of the application host.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer() error

	// Run serves until ctx is cancelled or a component fails, then shuts
	// down gracefully.
	Run(ctx context.Context) error
}
