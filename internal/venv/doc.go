// SPDX-License-Identifier: MPL-2.0

// Package venv locates and activates Python virtual environments.
//
// An environment is discovered relative to a base directory (Locate) and
// activated by building an environment Overlay rather than mutating the
// process environment. Two Activator implementations are available:
//   - static: derives the overlay from the standard venv layout conventions
//   - script: sources the real bin/activate with the embedded mvdan/sh
//     interpreter and diffs the resulting variables into an overlay
//
// Overlays are all-or-nothing: an activation that fails partway through
// produces no overlay at all.
package venv
