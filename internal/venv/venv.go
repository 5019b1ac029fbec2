// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDirName is the conventional directory name for the virtual
// environment alongside the launcher.
const DefaultDirName = ".venv"

var (
	// ErrEnvNotFound is the sentinel error wrapped by NotFoundError.
	ErrEnvNotFound = errors.New("virtual environment not found")
	// ErrActivateMissing is the sentinel error wrapped by ActivateMissingError.
	ErrActivateMissing = errors.New("activation script missing")
	// ErrInterpreterMissing is the sentinel error wrapped by InterpreterMissingError.
	ErrInterpreterMissing = errors.New("environment interpreter missing")
)

type (
	// Env describes a located virtual environment. All paths are absolute.
	Env struct {
		// Root is the environment directory (e.g. <base>/.venv).
		Root string
		// BinDir is the executable directory (bin on Unix, Scripts on Windows).
		BinDir string
		// Python is the environment's interpreter path.
		Python string
		// Activate is the activation script path.
		Activate string
		// Prompt is the prompt name from pyvenv.cfg, if present.
		Prompt string
		// Version is the interpreter version from pyvenv.cfg, if present.
		Version string
	}

	// NotFoundError is returned when the environment directory does not exist.
	NotFoundError struct {
		Path string
	}

	// ActivateMissingError is returned when the environment directory exists
	// but carries no activation script.
	ActivateMissingError struct {
		Path string
	}

	// InterpreterMissingError is returned when the environment carries no
	// Python interpreter.
	InterpreterMissingError struct {
		Path string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("virtual environment not found at %s", e.Path)
}

// Unwrap returns ErrEnvNotFound so callers can use errors.Is.
func (e *NotFoundError) Unwrap() error { return ErrEnvNotFound }

// Error implements the error interface.
func (e *ActivateMissingError) Error() string {
	return fmt.Sprintf("activation script missing: %s", e.Path)
}

// Unwrap returns ErrActivateMissing so callers can use errors.Is.
func (e *ActivateMissingError) Unwrap() error { return ErrActivateMissing }

// Error implements the error interface.
func (e *InterpreterMissingError) Error() string {
	return fmt.Sprintf("environment interpreter missing: %s", e.Path)
}

// Unwrap returns ErrInterpreterMissing so callers can use errors.Is.
func (e *InterpreterMissingError) Unwrap() error { return ErrInterpreterMissing }

// Locate finds the virtual environment named dirName under baseDir and
// validates its layout. An empty dirName selects DefaultDirName.
//
// Validation is ordered so the caller can distinguish the failure classes:
// missing directory, missing activation script, missing interpreter.
func Locate(baseDir, dirName string) (*Env, error) {
	if dirName == "" {
		dirName = DefaultDirName
	}

	root := filepath.Join(baseDir, dirName)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{Path: root}
	}

	binDir := filepath.Join(root, binDirName())
	activate := filepath.Join(binDir, activateName())
	if _, err := os.Stat(activate); err != nil {
		return nil, &ActivateMissingError{Path: activate}
	}

	python := filepath.Join(binDir, pythonName())
	if !isExecutableFile(python) {
		return nil, &InterpreterMissingError{Path: python}
	}

	env := &Env{
		Root:     root,
		BinDir:   binDir,
		Python:   python,
		Activate: activate,
	}

	// pyvenv.cfg is informative only; a venv without one still activates.
	if cfg, err := loadPyvenvCfg(filepath.Join(root, "pyvenv.cfg")); err == nil {
		env.Prompt = cfg["prompt"]
		env.Version = cfg["version"]
	}

	return env, nil
}

func binDirName() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}

func pythonName() string {
	if runtime.GOOS == "windows" {
		return "python.exe"
	}
	return "python"
}

func activateName() string {
	// The POSIX activate script is present on Windows venvs too (for git
	// bash), but Scripts/activate.bat is the canonical artifact there.
	if runtime.GOOS == "windows" {
		return "activate.bat"
	}
	return "activate"
}

// isExecutableFile reports whether path is a regular file the current user
// can execute. On Windows the mode bits carry no execute information, so
// existence of the .exe is enough.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
