// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// ReplaceExecutor performs a true exec(2) hand-off: the entry point takes
// over the current process image, pid, and standard streams, and reports its
// exit code directly to the original caller. Exec only returns on failure.
type ReplaceExecutor struct{}

// NewReplaceExecutor creates a new ReplaceExecutor.
func NewReplaceExecutor() *ReplaceExecutor {
	return &ReplaceExecutor{}
}

// Name returns the executor name.
func (e *ReplaceExecutor) Name() string { return "replace" }

// Exec replaces the current process with the entry point.
func (e *ReplaceExecutor) Exec(_ context.Context, spec *ExecSpec) (ExitCode, error) {
	if spec.Dir != "" {
		if err := unix.Chdir(spec.Dir); err != nil {
			return 0, fmt.Errorf("failed to enter working directory %s: %w", spec.Dir, err)
		}
	}
	if err := unix.Exec(spec.Path, spec.Argv, spec.Env); err != nil {
		return 0, fmt.Errorf("failed to exec entry point: %w", err)
	}
	// Unreachable: a successful exec never returns.
	return 0, nil
}

// DefaultExecutor returns the platform's preferred executor.
func DefaultExecutor() Executor {
	return NewReplaceExecutor()
}
