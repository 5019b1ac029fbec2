// SPDX-License-Identifier: MPL-2.0

// Package launcher implements the ppixel bootstrap sequence: resolve the
// launcher's own real location, activate the virtual environment found
// alongside it, and hand the process off to the application entry point.
//
// The sequence is strictly linear and aborts at the first failure. No step
// runs after a failed one, and the entry point's exit code becomes the
// launcher's own.
//
// Process hand-off goes through the Executor interface. On Unix the default
// executor replaces the process image (the entry point keeps the launcher's
// pid); on platforms without exec semantics it spawns the entry point with
// forwarded standard streams and propagates the exit code.
package launcher
