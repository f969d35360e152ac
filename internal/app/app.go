// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/google-services-gen/internal/config"
	"github.com/MKhiriev/google-services-gen/internal/logger"
	"github.com/MKhiriev/google-services-gen/internal/service"
	"github.com/MKhiriev/google-services-gen/internal/store"
)

// App is a single invocation of the generator.
type App struct {
	services *service.Services
	cfg      *config.StructuredConfig
	out      io.Writer

	logger *logger.Logger
}

// NewApp wires an [App]. Messages meant for the user are written to out.
func NewApp(services *service.Services, cfg *config.StructuredConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.GeneratorService == nil || services.AppInfoService == nil {
		return nil, ErrNoServicesProvided
	}
	if cfg == nil {
		return nil, ErrNoConfigProvided
	}

	return &App{
		services: services,
		cfg:      cfg,
		out:      out,
		logger:   logger,
	}, nil
}

// Run performs the generation, or prints build information when
// -version was given.
//
// A missing env file is reported on out and Run returns nil. Every other
// failure is returned to the caller, and in that case nothing was written.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.ShowVersion {
		_, err := fmt.Fprintln(a.out, a.services.AppInfoService.GetBuildInfo(ctx))
		return err
	}

	a.logger.Debug().
		Str("version", a.services.AppInfoService.GetAppVersion(ctx)).
		Str("env_file", a.cfg.Files.EnvFilePath).
		Str("output", a.cfg.Files.OutputPath).
		Msg("starting generation")

	result, err := a.services.GeneratorService.Generate(ctx)
	if err != nil {
		if errors.Is(err, store.ErrEnvFileNotFound) {
			a.logger.Warn().Err(err).Msg("env file not found, nothing generated")
			_, printErr := fmt.Fprintf(a.out, MsgEnvFileNotFound, a.cfg.Files.EnvFilePath)
			return printErr
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	_, err = fmt.Fprintf(a.out, MsgGenerated, displayPath(result.OutputPath))
	return err
}

func displayPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
