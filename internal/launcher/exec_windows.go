// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launcher

// DefaultExecutor returns the platform's preferred executor. Windows has no
// process replacement, so the entry point runs as a child with forwarded
// streams and a propagated exit code.
func DefaultExecutor() Executor {
	return NewSpawnExecutor()
}
