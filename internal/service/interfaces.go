package service

import (
	"context"

	"github.com/MKhiriev/google-services-gen/models"
)

// GeneratorService turns an environment-definition file into a
// google-services.json document.
type GeneratorService interface {
	// Generate reads the configured env file, projects it onto the document
	// schema and writes the configured output file.
	Generate(ctx context.Context) (models.GenerationResult, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
