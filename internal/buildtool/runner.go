// SPDX-License-Identifier: MPL-2.0

package buildtool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

type (
	// RunSpec describes a single tool invocation.
	RunSpec struct {
		// Path is the program to run.
		Path string
		// Args are the program arguments (without the program name).
		Args []string
		// Env is the complete environment, typically the activated overlay
		// applied to the host environment.
		Env []string
		// Dir is the working directory.
		Dir string
	}

	// RunResult captures a completed tool invocation.
	RunResult struct {
		// ExitCode is the tool's exit code.
		ExitCode int
		// Stdout is the captured standard output.
		Stdout string
		// Stderr is the captured standard error.
		Stderr string
	}

	// CommandRunner executes build tools. A non-zero exit is a normal
	// outcome reported in RunResult; errors are reserved for failures to
	// start at all.
	CommandRunner interface {
		Run(ctx context.Context, spec *RunSpec) (*RunResult, error)
	}

	// ExecRunner is the production CommandRunner backed by os/exec.
	ExecRunner struct{}
)

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the tool and captures its output.
func (r *ExecRunner) Run(ctx context.Context, spec *RunSpec) (*RunResult, error) {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Env = spec.Env
	cmd.Dir = spec.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", spec.Path, err)
	}

	return result, nil
}
