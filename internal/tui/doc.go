// SPDX-License-Identifier: MPL-2.0

// Package tui provides the terminal components shared by the ppixel
// launcher binaries: the build spinner, the yes/no prompt, and the lipgloss
// style palette.
package tui
