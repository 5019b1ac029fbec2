// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"maps"
	"slices"
	"strings"
)

type (
	// Overlay is an explicit set of environment changes produced by an
	// Activator. It is applied to a host environment snapshot at exec time
	// instead of mutating the process environment.
	Overlay struct {
		// Set maps variable names to their new values.
		Set map[string]string
		// Unset lists variables to remove from the host environment.
		Unset []string
	}
)

// NewOverlay creates an empty Overlay.
func NewOverlay() *Overlay {
	return &Overlay{Set: make(map[string]string)}
}

// Apply merges the overlay into a host environment given as "KEY=VALUE"
// entries and returns the resulting environment slice. Host entries keep
// their original order; overlay values are appended in sorted key order so
// the result is deterministic.
func (o *Overlay) Apply(host []string) []string {
	result := make([]string, 0, len(host)+len(o.Set))

	for _, entry := range host {
		name, _, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		if _, overridden := o.Set[name]; overridden {
			continue
		}
		if slices.Contains(o.Unset, name) {
			continue
		}
		result = append(result, entry)
	}

	for _, name := range slices.Sorted(maps.Keys(o.Set)) {
		result = append(result, name+"="+o.Set[name])
	}

	return result
}

// Lookup returns the value a variable would have after applying the overlay
// to the given host environment, and whether it would be set at all.
func (o *Overlay) Lookup(host []string, name string) (string, bool) {
	if value, ok := o.Set[name]; ok {
		return value, true
	}
	if slices.Contains(o.Unset, name) {
		return "", false
	}
	return LookupEnv(host, name)
}

// LookupEnv finds a variable in a "KEY=VALUE" environment slice.
// Later entries win, matching the semantics of exec environments.
func LookupEnv(host []string, name string) (string, bool) {
	value, found := "", false
	for _, entry := range host {
		if rest, ok := strings.CutPrefix(entry, name+"="); ok {
			value, found = rest, true
		}
	}
	return value, found
}
