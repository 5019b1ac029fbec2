// SPDX-License-Identifier: MPL-2.0

// Package config loads the launcher configuration.
//
// Configuration is optional: every knob has a default matching the standard
// application layout (.venv next to the launcher, run.py entry point, static
// activation). When present, launcher.toml is read from the platform config
// directory or from the application directory itself, and PPIXEL_* environment
// variables override file values.
package config
