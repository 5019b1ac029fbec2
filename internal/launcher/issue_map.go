// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"

	"ppixel-launcher/internal/issue"
	"ppixel-launcher/internal/venv"
)

// IssueFor maps a launch failure to its catalog entry, or 0 when the error
// belongs to no known failure class.
func IssueFor(err error) issue.Id {
	switch {
	case errors.Is(err, ErrSelfResolve):
		return issue.SelfResolveFailedId
	case errors.Is(err, venv.ErrEnvNotFound):
		return issue.EnvNotFoundId
	case errors.Is(err, venv.ErrActivateMissing),
		errors.Is(err, venv.ErrInterpreterMissing),
		errors.Is(err, ErrActivationFailed):
		return issue.ActivationFailedId
	case errors.Is(err, ErrEntryPointNotFound):
		return issue.EntryPointNotFoundId
	case errors.Is(err, ErrExecFailed):
		return issue.ExecFailedId
	}
	return 0
}
