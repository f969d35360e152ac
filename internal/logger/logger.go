// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and run tagging.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Logs go to stderr: stdout is reserved for the messages the generator
// prints for the user.
package logger

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// RunIDFieldName is the field under which WithRunID stores the run identifier.
const RunIDFieldName = "run_id"

// DefaultLevel is used before the configured level is known.
const DefaultLevel = zerolog.InfoLevel

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger writing JSON to os.Stderr for the given
// role label and minimum level.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "time" timestamp;
//   - a "func" caller field with the fully-qualified function name
//     instead of the default file:line.
func NewLogger(role string, level zerolog.Level) *Logger {
	return newLogger(os.Stderr, role, level)
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a level name ("debug", "info", "warn", ...) to a
// zerolog.Level. The empty string maps to zerolog.NoLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	return zerolog.ParseLevel(name)
}

// Nop returns a *Logger that discards all log output.
// It is intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithRunID returns a child logger tagged with the given run identifier.
func (l *Logger) WithRunID(runID string) *Logger {
	child := l.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str(RunIDFieldName, runID)
	})
	return child
}
