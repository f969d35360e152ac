// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one generation: it calls the generator service, recovers
// from a missing env file and prints the user-facing outcome.
//
// All Msg* constants are the format strings written to stdout. Keeping them
// in one place keeps wording consistent between the binary and its tests.
package app

const (
	// MsgEnvFileNotFound is printed when the env file does not exist.
	// The run ends without writing anything and without a failure status.
	MsgEnvFileNotFound = "Error: %s file not found.\n"

	// MsgGenerated is printed with the absolute output path after a
	// successful run.
	MsgGenerated = "Successfully generated %s\n"
)
