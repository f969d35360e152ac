package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/google-services-gen/internal/envfile"
	"github.com/MKhiriev/google-services-gen/internal/logger"
)

// environmentFileStorage reads environment-definition files from the local
// filesystem.
type environmentFileStorage struct {
	logger *logger.Logger
}

// NewEnvironmentFileStorage constructs an [EnvironmentReader] backed by
// envfile.Load.
func NewEnvironmentFileStorage(logger *logger.Logger) EnvironmentReader {
	return &environmentFileStorage{logger: logger}
}

func (s *environmentFileStorage) ReadEnvironment(ctx context.Context, path string) (envfile.Environment, error) {
	if err := ctx.Err(); err != nil {
		return envfile.Environment{}, err
	}

	env, err := envfile.Load(path)
	if err != nil {
		if errors.Is(err, envfile.ErrFileNotFound) {
			return envfile.Environment{}, fmt.Errorf("%w: %w", ErrEnvFileNotFound, err)
		}
		return envfile.Environment{}, fmt.Errorf("%w: %w", ErrReadingEnvFile, err)
	}

	s.logger.Debug().
		Str("path", path).
		Int("variables", env.Len()).
		Strs("keys", env.Keys()).
		Msg("env file loaded")

	return env, nil
}
