// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] can drive a run.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Files.EnvFilePath) == "" || strings.TrimSpace(cfg.Files.OutputPath) == "" {
		return ErrInvalidFilesConfigs
	}

	if strings.TrimSpace(cfg.Android.PackageName) == "" || cfg.Android.ConfigurationVersion == "" {
		return ErrInvalidAndroidConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || cfg.Log.Level == "" {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	return nil
}
