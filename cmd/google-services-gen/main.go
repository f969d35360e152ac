// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/google-services-gen/internal/app"
	"github.com/MKhiriev/google-services-gen/internal/config"
	"github.com/MKhiriev/google-services-gen/internal/logger"
	"github.com/MKhiriev/google-services-gen/internal/service"
	"github.com/MKhiriev/google-services-gen/internal/store"
	"github.com/MKhiriev/google-services-gen/models"
)

const role = "google-services-gen"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		log := logger.NewLogger(role, logger.DefaultLevel)
		log.Fatal().Err(err).Msg("google-services-gen run error")
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.GetStructuredConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}
	log := logger.NewLogger(role, level).WithRunID(app.NewRunID())

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	generator, err := app.NewApp(services, cfg, stdout, log)
	if err != nil {
		return fmt.Errorf("init app error: %w", err)
	}

	return generator.Run(ctx)
}
