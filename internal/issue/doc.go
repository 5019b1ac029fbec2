// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and the catalog of
// rendered help texts for known launcher failures.
//
// ActionableError carries what operation failed, what resource was involved,
// and suggestions for fixing it. The Issue catalog maps known failure classes
// to markdown help rendered with glamour.
package issue
