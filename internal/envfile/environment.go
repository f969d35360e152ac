// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envfile

import (
	"maps"
	"slices"
)

// Environment is a read-only mapping of variable names to values.
//
// The zero value is an empty environment and is safe to use.
type Environment struct {
	vars map[string]string
}

// FromMap builds an [Environment] from a copy of vars. Later changes to vars
// are not visible through the returned value.
func FromMap(vars map[string]string) Environment {
	return Environment{vars: maps.Clone(vars)}
}

// Lookup returns the value stored for key and whether the key was present.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Get returns the value stored for key, or the empty string when the key is
// absent.
func (e Environment) Get(key string) string {
	return e.vars[key]
}

// Len returns the number of variables.
func (e Environment) Len() int {
	return len(e.vars)
}

// Keys returns all variable names in sorted order.
func (e Environment) Keys() []string {
	return slices.Sorted(maps.Keys(e.vars))
}
