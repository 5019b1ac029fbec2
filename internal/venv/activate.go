// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

type (
	// Activator turns a located environment into an Overlay. The host
	// environment is passed explicitly as "KEY=VALUE" entries so callers
	// (and tests) control the input instead of reading os.Environ deep
	// inside the activation path.
	Activator interface {
		// Name returns the activator name.
		Name() string
		// Activate builds the environment overlay for env. A non-nil error
		// means activation failed and no part of the overlay may be applied.
		Activate(ctx context.Context, env *Env, host []string) (*Overlay, error)
	}

	// StaticActivator derives the overlay from the standard venv layout
	// without running any shell code. This mirrors what bin/activate does
	// for the variables that matter to a non-interactive process:
	// VIRTUAL_ENV, PATH, VIRTUAL_ENV_PROMPT, and the removal of PYTHONHOME.
	StaticActivator struct{}
)

// NewStaticActivator creates a new StaticActivator.
func NewStaticActivator() *StaticActivator {
	return &StaticActivator{}
}

// Name returns the activator name.
func (a *StaticActivator) Name() string { return "static" }

// Activate builds the overlay from layout conventions.
func (a *StaticActivator) Activate(_ context.Context, env *Env, host []string) (*Overlay, error) {
	overlay := NewOverlay()

	overlay.Set["VIRTUAL_ENV"] = env.Root

	prompt := env.Prompt
	if prompt == "" {
		prompt = filepath.Base(env.Root)
	}
	overlay.Set["VIRTUAL_ENV_PROMPT"] = prompt

	path, _ := LookupEnv(host, "PATH")
	if path == "" {
		overlay.Set["PATH"] = env.BinDir
	} else {
		overlay.Set["PATH"] = env.BinDir + string(os.PathListSeparator) + path
	}

	// PYTHONHOME would redirect the interpreter away from the venv.
	if _, found := LookupEnv(host, "PYTHONHOME"); found {
		overlay.Unset = append(overlay.Unset, "PYTHONHOME")
	}

	return overlay, nil
}

// AlreadyActive reports whether the host environment already points at the
// given environment root, in which case activation is a no-op.
func AlreadyActive(env *Env, host []string) bool {
	active, found := LookupEnv(host, "VIRTUAL_ENV")
	if !found {
		return false
	}
	return filepath.Clean(strings.TrimSpace(active)) == filepath.Clean(env.Root)
}
