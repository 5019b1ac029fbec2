// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

type (
	// ExecSpec describes the entry point invocation handed to an Executor.
	ExecSpec struct {
		// Path is the program to execute (the venv interpreter).
		Path string
		// Argv is the full argument vector, Argv[0] included.
		Argv []string
		// Env is the complete environment for the new process.
		Env []string
		// Dir is the working directory. Empty means inherit.
		Dir string
		// Stdin, Stdout, Stderr are forwarded to the entry point when the
		// executor spawns a child instead of replacing the process.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Executor performs the hand-off to the entry point. A replacing
	// executor only ever returns on failure; a spawning executor returns
	// the child's exit code after it terminates.
	Executor interface {
		// Name returns the executor name.
		Name() string
		// Exec runs the entry point. The returned ExitCode is meaningful
		// only when err is nil.
		Exec(ctx context.Context, spec *ExecSpec) (ExitCode, error)
	}

	// SpawnExecutor runs the entry point as a child process with forwarded
	// standard streams and reports its exit code. It is the default on
	// platforms without process replacement and the executor of choice in
	// tests.
	SpawnExecutor struct{}
)

// NewSpawnExecutor creates a new SpawnExecutor.
func NewSpawnExecutor() *SpawnExecutor {
	return &SpawnExecutor{}
}

// Name returns the executor name.
func (e *SpawnExecutor) Name() string { return "spawn" }

// Exec spawns the entry point and waits for it. A non-zero exit from the
// child is a normal outcome, returned as its ExitCode with a nil error;
// failure to start at all is an error.
func (e *SpawnExecutor) Exec(ctx context.Context, spec *ExecSpec) (ExitCode, error) {
	if len(spec.Argv) == 0 {
		return 0, fmt.Errorf("empty argument vector")
	}

	cmd := exec.CommandContext(ctx, spec.Path, spec.Argv[1:]...)
	cmd.Env = spec.Env
	cmd.Dir = spec.Dir
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitCode(exitErr.ExitCode()), nil
		}
		return 0, fmt.Errorf("failed to start entry point: %w", err)
	}

	return 0, nil
}
