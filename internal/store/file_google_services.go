// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/google-services-gen/internal/logger"
	"github.com/MKhiriev/google-services-gen/models"
)

const (
	outputIndent   = "  "
	outputFileMode = 0o644
)

// googleServicesFileStorage writes google-services.json documents to the
// local filesystem.
//
// A document is written to a temporary file next to the destination and
// renamed over it. A failed write leaves any previous file untouched. No
// directories are created. A symlinked destination is written through, and
// an existing file keeps its permission bits.
type googleServicesFileStorage struct {
	logger *logger.Logger
}

// NewGoogleServicesFileStorage constructs a [GoogleServicesWriter] backed by
// the local filesystem.
func NewGoogleServicesFileStorage(logger *logger.Logger) GoogleServicesWriter {
	return &googleServicesFileStorage{logger: logger}
}

// WriteGoogleServices encodes doc as JSON indented with two spaces,
// followed by a newline, and atomically replaces the file at path.
func (s *googleServicesFileStorage) WriteGoogleServices(ctx context.Context, path string, doc models.GoogleServices) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeGoogleServices(doc)
	if err != nil {
		return err
	}

	target, perm, err := resolveDestination(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutputFile, err)
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutputFile, err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if committed {
			return
		}
		tmp.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn().Err(rmErr).Str("path", tmpPath).Msg("failed to remove temporary file")
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutputFile, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutputFile, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutputFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutputFile, err)
	}
	if err = os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutputFile, err)
	}
	committed = true

	s.logger.Debug().
		Str("path", path).
		Str("target", target).
		Stringer("mode", perm).
		Int("bytes", len(data)).
		Msg("google services file written")

	return nil
}

// resolveDestination returns the file that path finally refers to and the
// permission bits the written file gets. An existing destination keeps its
// own mode and, when path is a symlink, the link is followed so the link
// itself stays in place. A new file gets outputFileMode minus the umask.
func resolveDestination(path string) (string, os.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", 0, err
		}
		return path, outputFileMode &^ currentUmask(), nil
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}

	return target, info.Mode().Perm(), nil
}

// encodeGoogleServices keeps '<', '>' and '&' literal: API keys and bucket
// names are copied as-is, not HTML-escaped.
func encodeGoogleServices(doc models.GoogleServices) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", outputIndent)

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingOutput, err)
	}

	return buf.Bytes(), nil
}
