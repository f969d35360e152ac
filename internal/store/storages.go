package store

import "github.com/MKhiriev/google-services-gen/internal/logger"

// Storages groups the file-system adapters used by a generation run.
type Storages struct {
	EnvironmentReader    EnvironmentReader
	GoogleServicesWriter GoogleServicesWriter
}

// NewStorages returns the local filesystem implementations.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		EnvironmentReader:    NewEnvironmentFileStorage(logger),
		GoogleServicesWriter: NewGoogleServicesFileStorage(logger),
	}
}
