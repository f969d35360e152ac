// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	ErrNoServicesProvided = errors.New("no services provided")
	ErrNoConfigProvided   = errors.New("no config provided")
)
