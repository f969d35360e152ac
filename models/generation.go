// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerationResult describes a completed generation run.
type GenerationResult struct {
	// OutputPath is the path the document was written to.
	OutputPath string

	// MissingKeys lists the recognized environment keys that were absent
	// from the input and were written as empty strings.
	MissingKeys []string
}
