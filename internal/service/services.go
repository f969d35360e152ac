package service

import (
	"fmt"

	"github.com/MKhiriev/google-services-gen/internal/config"
	"github.com/MKhiriev/google-services-gen/internal/logger"
	"github.com/MKhiriev/google-services-gen/internal/store"
	"github.com/MKhiriev/google-services-gen/models"
)

type Services struct {
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	generator, err := NewGeneratorService(storages, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating generator service: %w", err)
	}

	return &Services{
		GeneratorService: generator,
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}, nil
}
