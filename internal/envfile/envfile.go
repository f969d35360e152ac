// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envfile reads dotenv-style environment-definition files into an
// immutable [Environment].
//
// The accepted format is one KEY=VALUE pair per line,
// blank lines and lines starting with '#' are ignored, and the line is split
// on the first '=' only. Keys and values are stored verbatim: no quote
// stripping, no escape handling, no variable expansion.
package envfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	commentPrefix = "#"
	separator     = "="

	// maxLineSize bounds a single line, BOM included.
	maxLineSize = 1 << 20
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads r line by line and builds an [Environment].
//
// A line that is not valid UTF-8, or that is not blank, not a comment and
// has no '=' separator, or whose key is empty, aborts parsing with a
// [*ParseError]. Lines end at "\n", "\r\n" or a lone "\r". A later duplicate key
// overwrites an earlier one.
func Parse(r io.Reader) (Environment, error) {
	vars := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		raw := scanner.Bytes()
		if lineNum == 1 {
			raw = bytes.TrimPrefix(raw, utf8BOM)
		}

		if !utf8.Valid(raw) {
			return Environment{}, &ParseError{Line: lineNum, Err: ErrInvalidUTF8}
		}

		line := strings.TrimSpace(string(raw))
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		key, value, found := strings.Cut(line, separator)
		if !found {
			return Environment{}, &ParseError{Line: lineNum, Err: ErrMissingSeparator}
		}
		if key == "" {
			return Environment{}, &ParseError{Line: lineNum, Err: ErrEmptyKey}
		}

		vars[key] = value
	}

	if err := scanner.Err(); err != nil {
		return Environment{}, fmt.Errorf("%w after line %d: %w", ErrReadingFile, lineNum, err)
	}

	return Environment{vars: vars}, nil
}

// scanLines is bufio.ScanLines that also ends a line on a lone '\r'.
// "\r\n" counts as a single break.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// a following '\n' may still arrive
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Load opens the file at path and parses it with [Parse].
//
// If the file does not exist the returned error matches both
// [ErrFileNotFound] and [fs.ErrNotExist].
func Load(path string) (Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Environment{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return Environment{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defer f.Close()

	env, err := Parse(f)
	if err != nil {
		return Environment{}, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return env, nil
}
