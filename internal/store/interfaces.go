package store

import (
	"context"

	"github.com/MKhiriev/google-services-gen/internal/envfile"
	"github.com/MKhiriev/google-services-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EnvironmentReader loads an environment-definition file.
type EnvironmentReader interface {
	// ReadEnvironment parses the file at path. An absent file yields an
	// error matching ErrEnvFileNotFound.
	ReadEnvironment(ctx context.Context, path string) (envfile.Environment, error)
}

// GoogleServicesWriter persists a generated document.
type GoogleServicesWriter interface {
	// WriteGoogleServices replaces the file at path with doc. The parent
	// directory must exist.
	WriteGoogleServices(ctx context.Context, path string, doc models.GoogleServices) error
}
