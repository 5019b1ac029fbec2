// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ActivationStatic derives the environment overlay from the venv layout
	// conventions without running any shell code.
	ActivationStatic ActivationMode = "static"
	// ActivationScript sources the venv's real activate script with the
	// embedded shell interpreter.
	ActivationScript ActivationMode = "script"
)

// ErrInvalidActivationMode is the sentinel error wrapped by InvalidActivationModeError.
var ErrInvalidActivationMode = errors.New("invalid activation mode")

type (
	// ActivationMode selects how the virtual environment is activated.
	ActivationMode string

	// InvalidActivationModeError is returned when an ActivationMode value is
	// not recognized. It wraps ErrInvalidActivationMode for errors.Is.
	InvalidActivationModeError struct {
		Value ActivationMode
	}

	// Config holds the launcher settings.
	Config struct {
		// EnvDir is the virtual environment directory name under the
		// application directory.
		EnvDir string `mapstructure:"env_dir"`
		// EntryPoint is the entry script name under the application directory.
		EntryPoint string `mapstructure:"entry_point"`
		// Activation selects the activation strategy.
		Activation ActivationMode `mapstructure:"activation"`
		// Debug enables debug logging to stderr.
		Debug bool `mapstructure:"debug"`
	}
)

// Error implements the error interface.
func (e *InvalidActivationModeError) Error() string {
	return fmt.Sprintf("invalid activation mode %q (must be 'static' or 'script')", string(e.Value))
}

// Unwrap returns ErrInvalidActivationMode so callers can use errors.Is.
func (e *InvalidActivationModeError) Unwrap() error { return ErrInvalidActivationMode }

// IsValid returns whether the ActivationMode is recognized, and a list of
// validation errors if it is not.
func (m ActivationMode) IsValid() (bool, []error) {
	switch m {
	case ActivationStatic, ActivationScript:
		return true, nil
	}
	return false, []error{&InvalidActivationModeError{Value: m}}
}

// DefaultConfig returns the configuration matching the standard layout.
func DefaultConfig() *Config {
	return &Config{
		EnvDir:     ".venv",
		EntryPoint: "run.py",
		Activation: ActivationStatic,
		Debug:      false,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if ok, errs := c.Activation.IsValid(); !ok {
		return errs[0]
	}
	if c.EnvDir == "" {
		return errors.New("env_dir must not be empty")
	}
	if c.EntryPoint == "" {
		return errors.New("entry_point must not be empty")
	}
	return nil
}
