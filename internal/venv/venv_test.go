// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestEnv lays out a minimal but valid virtual environment under
// baseDir and returns its root. The layout follows the platform conventions
// Locate expects.
func writeTestEnv(t *testing.T, baseDir string) string {
	t.Helper()

	root := filepath.Join(baseDir, DefaultDirName)
	binDir := filepath.Join(root, binDirName())
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(binDir, activateName()), []byte("# activate\n"), 0o644); err != nil {
		t.Fatalf("failed to write activate: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, pythonName()), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write python: %v", err)
	}

	return root
}

func TestLocate_ValidLayout(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	root := writeTestEnv(t, baseDir)

	env, err := Locate(baseDir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.Root != root {
		t.Errorf("expected root %q, got %q", root, env.Root)
	}
	if env.BinDir != filepath.Join(root, binDirName()) {
		t.Errorf("unexpected bin dir %q", env.BinDir)
	}
	if env.Python != filepath.Join(root, binDirName(), pythonName()) {
		t.Errorf("unexpected interpreter path %q", env.Python)
	}
	if env.Activate != filepath.Join(root, binDirName(), activateName()) {
		t.Errorf("unexpected activate path %q", env.Activate)
	}
}

func TestLocate_ReadsPyvenvCfg(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	root := writeTestEnv(t, baseDir)

	content := "home = /usr/bin\nversion = 3.12.1\nprompt = myapp\n"
	if err := os.WriteFile(filepath.Join(root, "pyvenv.cfg"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write pyvenv.cfg: %v", err)
	}

	env, err := Locate(baseDir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.Prompt != "myapp" {
		t.Errorf("expected prompt %q, got %q", "myapp", env.Prompt)
	}
	if env.Version != "3.12.1" {
		t.Errorf("expected version %q, got %q", "3.12.1", env.Version)
	}
}

func TestLocate_CustomDirName(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	binDir := filepath.Join(baseDir, "venv310", binDirName())
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, activateName()), []byte("# activate\n"), 0o644); err != nil {
		t.Fatalf("failed to write activate: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, pythonName()), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write python: %v", err)
	}

	env, err := Locate(baseDir, "venv310")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Root != filepath.Join(baseDir, "venv310") {
		t.Errorf("unexpected root %q", env.Root)
	}
}

func TestLocate_MissingEnvironment(t *testing.T) {
	t.Parallel()

	_, err := Locate(t.TempDir(), "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, ErrEnvNotFound) {
		t.Errorf("expected ErrEnvNotFound, got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected *NotFoundError, got %T", err)
	}
}

func TestLocate_MissingActivateScript(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(baseDir, DefaultDirName, binDirName()), 0o755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}

	_, err := Locate(baseDir, "")
	if !errors.Is(err, ErrActivateMissing) {
		t.Errorf("expected ErrActivateMissing, got %v", err)
	}
}

func TestLocate_MissingInterpreter(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	binDir := filepath.Join(baseDir, DefaultDirName, binDirName())
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, activateName()), []byte("# activate\n"), 0o644); err != nil {
		t.Fatalf("failed to write activate: %v", err)
	}

	_, err := Locate(baseDir, "")
	if !errors.Is(err, ErrInterpreterMissing) {
		t.Errorf("expected ErrInterpreterMissing, got %v", err)
	}
}

func TestLocate_EnvPathIsFile(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(baseDir, DefaultDirName), []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Locate(baseDir, "")
	if !errors.Is(err, ErrEnvNotFound) {
		t.Errorf("expected ErrEnvNotFound, got %v", err)
	}
}
