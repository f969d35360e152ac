package store

import "errors"

// Sentinel errors returned by the file storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEnvFileNotFound is returned when the environment-definition file
	// does not exist. The returned error also matches envfile.ErrFileNotFound.
	ErrEnvFileNotFound = errors.New("env file is missing")

	// ErrReadingEnvFile is returned when the environment-definition file
	// exists but cannot be read or parsed.
	ErrReadingEnvFile = errors.New("error reading env file")

	// ErrEncodingOutput is returned when the document cannot be serialized.
	ErrEncodingOutput = errors.New("error encoding google services document")

	// ErrWritingOutputFile is returned when the destination cannot be
	// created, written, synced or renamed into place (for example because
	// its parent directory does not exist).
	ErrWritingOutputFile = errors.New("error writing google services file")
)
