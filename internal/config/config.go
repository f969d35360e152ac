// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
)

// EnvPrefix is prepended to every environment variable read by this package,
// so the generator never collides with the variables it copies.
const EnvPrefix = "GSERVICES_"

// Default values. Running the generator without any flag, variable or JSON
// file reads ./.env and writes ./android/app/google-services.json.
const (
	DefaultEnvFilePath          = ".env"
	DefaultPackageName          = "com.example.designwear"
	DefaultConfigurationVersion = "1"
	DefaultLogLevel             = "info"
)

// DefaultOutputPath is android/app/google-services.json with the separator
// of the host OS.
var DefaultOutputPath = filepath.Join("android", "app", "google-services.json")

// StructuredConfig is the top-level configuration container of the
// generator. It is populated by merging command-line flags, environment
// variables, an optional JSON file and the defaults above.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Files holds the input and output locations.
	Files Files `envPrefix:"FILES_"`

	// Android holds the literal values written into the generated document
	// that do not come from the env file.
	Android Android `envPrefix:"ANDROID_"`

	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via GSERVICES_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion asks the binary to print build information and exit.
	// Only settable with the -version flag.
	ShowVersion bool
}

// Files holds the paths the generator reads from and writes to.
type Files struct {
	// EnvFilePath is the environment-definition file to read.
	// Env: GSERVICES_FILES_ENV_FILE
	EnvFilePath string `env:"ENV_FILE"`

	// OutputPath is the google-services.json file to write. Its parent
	// directory must already exist.
	// Env: GSERVICES_FILES_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH"`
}

// Android holds fixed values of the generated document.
type Android struct {
	// PackageName is written to client_info.android_client_info.package_name.
	// Env: GSERVICES_ANDROID_PACKAGE_NAME
	PackageName string `env:"PACKAGE_NAME"`

	// ConfigurationVersion is written to configuration_version.
	// Env: GSERVICES_ANDROID_CONFIGURATION_VERSION
	ConfigurationVersion string `env:"CONFIGURATION_VERSION"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	// Env: GSERVICES_LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Files: Files{
			EnvFilePath: DefaultEnvFilePath,
			OutputPath:  DefaultOutputPath,
		},
		Android: Android{
			PackageName:          DefaultPackageName,
			ConfigurationVersion: DefaultConfigurationVersion,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first non-zero
// value wins):
//  1. Command-line flags (args, without the program name)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
