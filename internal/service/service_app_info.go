package service

import (
	"context"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/models"
)

type appInfoService struct {
	appName    string
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService returns the health reporter. The configured version
// wins; the build version embedded at link time is the fallback.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{Status: "ok", App: s.appName, Version: s.appVersion}
}
