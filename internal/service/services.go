package service

import (
	"fmt"

	"github.com/MKhiriev/go-farol/internal/adapter"
	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/internal/store"
	"github.com/MKhiriev/go-farol/internal/utils"
	"github.com/MKhiriev/go-farol/internal/validators"
	"github.com/MKhiriev/go-farol/models"
)

type Services struct {
	IdentityService IdentityService
	FeatureService  FeatureService
	ProjectService  ProjectService
	WorkItemService WorkItemService
	ClientService   ClientService
	WebhookService  WebhookService
	AppInfoService  AppInfoService
}

func NewServices(tracker adapter.IssueTracker, storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	identityService, err := NewIdentityService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("identity service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	rootProject := cfg.Upstream.RootProject

	return &Services{
		IdentityService: identityService,
		FeatureService:  NewFeatureService(tracker, rootProject, logger),
		ProjectService:  NewProjectService(tracker, cfg.Cache.TTL, logger),
		WorkItemService: NewWorkItemService(tracker, validator, rootProject, logger),
		ClientService:   NewClientService(tracker, rootProject, logger),
		WebhookService:  NewWebhookService(storages.WebhookEventRepository, validator, utils.NewPayloadHasher(cfg.App.SecretKey), logger),
		AppInfoService:  appInfoService,
	}, nil
}
