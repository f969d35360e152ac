package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/google-services-gen/internal/config"
	"github.com/MKhiriev/google-services-gen/internal/logger"
	"github.com/MKhiriev/google-services-gen/internal/store"
	"github.com/MKhiriev/google-services-gen/models"
)

type generatorService struct {
	envReader store.EnvironmentReader
	writer    store.GoogleServicesWriter

	files   config.Files
	android config.Android

	logger *logger.Logger
}

func NewGeneratorService(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (GeneratorService, error) {
	if storages == nil || storages.EnvironmentReader == nil || storages.GoogleServicesWriter == nil {
		return nil, ErrNoStoragesProvided
	}

	return &generatorService{
		envReader: storages.EnvironmentReader,
		writer:    storages.GoogleServicesWriter,
		files:     cfg.Files,
		android:   cfg.Android,
		logger:    logger,
	}, nil
}

// Generate never writes anything when reading the env file fails: the
// output is only touched after a complete, successful parse.
func (s *generatorService) Generate(ctx context.Context) (models.GenerationResult, error) {
	env, err := s.envReader.ReadEnvironment(ctx, s.files.EnvFilePath)
	if err != nil {
		return models.GenerationResult{}, fmt.Errorf("%w from %s: %w", ErrReadingEnvironment, s.files.EnvFilePath, err)
	}

	doc := BuildGoogleServices(env, s.android)

	missing := MissingKeys(env)
	if len(missing) > 0 {
		s.logger.Debug().
			Strs("missing_keys", missing).
			Msg("keys absent from env file, writing empty values")
	}

	if err = s.writer.WriteGoogleServices(ctx, s.files.OutputPath, doc); err != nil {
		return models.GenerationResult{}, fmt.Errorf("%w to %s: %w", ErrWritingConfiguration, s.files.OutputPath, err)
	}

	s.logger.Info().
		Str("env_file", s.files.EnvFilePath).
		Str("output", s.files.OutputPath).
		Str("package_name", s.android.PackageName).
		Int("missing_keys", len(missing)).
		Msg("google services configuration generated")

	return models.GenerationResult{
		OutputPath:  s.files.OutputPath,
		MissingKeys: missing,
	}, nil
}
