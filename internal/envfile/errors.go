// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envfile

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned by [Load] when the file does not exist.
	ErrFileNotFound = errors.New("env file not found")

	// ErrReadingFile is returned when the file exists but cannot be opened
	// or read to the end.
	ErrReadingFile = errors.New("error reading env file")

	// ErrMissingSeparator marks a line that has no '=' between key and value.
	ErrMissingSeparator = errors.New("missing '=' separator")

	// ErrEmptyKey marks a line whose key part is empty (e.g. "=value").
	ErrEmptyKey = errors.New("empty key")

	// ErrInvalidUTF8 marks a line that is not valid UTF-8. Such bytes cannot
	// be carried into the JSON output unchanged.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// ParseError reports a malformed line. The line content is not kept: values
// in env files are usually secrets.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Err is ErrMissingSeparator, ErrEmptyKey or ErrInvalidUTF8.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
