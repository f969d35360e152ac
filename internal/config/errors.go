package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot drive a generation run.
var (
	// ErrInvalidFilesConfigs indicates a missing env file or output path.
	ErrInvalidFilesConfigs = errors.New("invalid files configuration")
	// ErrInvalidAndroidConfigs indicates a missing package name or
	// configuration version.
	ErrInvalidAndroidConfigs = errors.New("invalid android configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

// ErrUnexpectedArguments is returned when positional arguments follow the
// flags. The generator takes none.
var ErrUnexpectedArguments = errors.New("unexpected arguments")
