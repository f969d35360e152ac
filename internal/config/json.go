package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
//
// Example:
//
//	{
//	  "files":   {"env_file": ".env.staging", "output_path": "android/app/google-services.json"},
//	  "android": {"package_name": "com.example.designwear", "configuration_version": "1"},
//	  "log":     {"level": "debug"}
//	}
type StructuredJSONConfig struct {
	Files struct {
		EnvFilePath string `json:"env_file"`
		OutputPath  string `json:"output_path"`
	} `json:"files,omitempty"`

	Android struct {
		PackageName          string `json:"package_name"`
		ConfigurationVersion string `json:"configuration_version"`
	} `json:"android,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Files: Files{
			EnvFilePath: jsonCfg.Files.EnvFilePath,
			OutputPath:  jsonCfg.Files.OutputPath,
		},
		Android: Android{
			PackageName:          jsonCfg.Android.PackageName,
			ConfigurationVersion: jsonCfg.Android.ConfigurationVersion,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
