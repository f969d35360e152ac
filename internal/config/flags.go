package config

import (
	"flag"
	"fmt"
	"strings"
)

// FlagSetName is the name reported in usage output.
const FlagSetName = "google-services-gen"

// parseFlags parses the command-line flags in args (without the program
// name). Flags left unset produce zero values, which lets lower-priority
// sources fill them during the merge.
//
// Flags:
//
//	-env-file path of the env file to read
//	-o/-output path of the google-services.json file to write
//	-package-name Android application package name
//	-log-level diagnostic log level (trace, debug, info, warn, error)
//	-c/-config json file path with configs
//	-version print build information and exit
func parseFlags(args []string) (*StructuredConfig, error) {
	var envFilePath string
	var outputPath string
	var packageName string
	var logLevel string
	var jsonConfigPath string
	var showVersion bool

	fs := flag.NewFlagSet(FlagSetName, flag.ContinueOnError)
	fs.StringVar(&envFilePath, "env-file", "", "Env file path (default "+DefaultEnvFilePath+")")
	fs.StringVar(&outputPath, "o", "", "Output file path (default "+DefaultOutputPath+")")
	fs.StringVar(&outputPath, "output", "", "Output file path (alias)")
	fs.StringVar(&packageName, "package-name", "", "Android package name (default "+DefaultPackageName+")")
	fs.StringVar(&logLevel, "log-level", "", "Log level (default "+DefaultLogLevel+")")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArguments, strings.Join(fs.Args(), " "))
	}

	return &StructuredConfig{
		Files: Files{
			EnvFilePath: envFilePath,
			OutputPath:  outputPath,
		},
		Android: Android{
			PackageName: packageName,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, nil
}
