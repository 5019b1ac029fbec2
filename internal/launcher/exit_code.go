// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"strconv"
)

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// ExitStatusError reports that the entry point terminated with a
	// non-zero exit code. It signals normal process termination rather than
	// a bootstrap failure, so callers propagate the code instead of
	// printing a diagnostic.
	ExitStatusError struct {
		Code ExitCode
	}
)

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
