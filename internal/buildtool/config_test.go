// SPDX-License-Identifier: MPL-2.0

package buildtool

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func TestLoadBuildConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadBuildConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppName != "ppixel" {
		t.Errorf("expected app name ppixel, got %q", cfg.AppName)
	}
	if cfg.Script != "run.py" {
		t.Errorf("expected script run.py, got %q", cfg.Script)
	}
	if !slices.Equal(cfg.Modules, []string{"pyinstaller", "pillow", "numpy"}) {
		t.Errorf("unexpected default modules %v", cfg.Modules)
	}
}

func TestLoadBuildConfig_FileLayersOverDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `
app_name = "imgtool"
extra_args = ["--hidden-import=PIL._tkinter_finder"]
`
	if err := os.WriteFile(filepath.Join(dir, BuildConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write build.toml: %v", err)
	}

	cfg, err := LoadBuildConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppName != "imgtool" {
		t.Errorf("expected app name imgtool, got %q", cfg.AppName)
	}
	// Unset keys keep their defaults.
	if cfg.Script != "run.py" {
		t.Errorf("expected default script, got %q", cfg.Script)
	}
	if !slices.Equal(cfg.ExtraArgs, []string{"--hidden-import=PIL._tkinter_finder"}) {
		t.Errorf("unexpected extra args %v", cfg.ExtraArgs)
	}
}

func TestLoadBuildConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "broken toml", content: "app_name = [\n"},
		{name: "empty app name", content: "app_name = \"\"\n"},
		{name: "empty script", content: "script = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, BuildConfigFileName), []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write build.toml: %v", err)
			}

			if _, err := LoadBuildConfig(dir); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestPyInstallerArgs(t *testing.T) {
	t.Parallel()

	cfg := &BuildConfig{
		AppName:   "ppixel",
		Script:    "run.py",
		ExtraArgs: []string{"--hidden-import=x"},
	}
	args := cfg.PyInstallerArgs()

	if args[0] != "run.py" {
		t.Errorf("expected script first, got %q", args[0])
	}
	for _, want := range []string{"--onefile", "--console", "--name=ppixel", "--log-level=WARN", "--clean", "--noconfirm", "--hidden-import=x"} {
		if !slices.Contains(args, want) {
			t.Errorf("expected %q in args %v", want, args)
		}
	}

	if runtime.GOOS == "linux" && !slices.Contains(args, "--strip") {
		t.Error("expected --strip on linux")
	}
	if runtime.GOOS != "linux" && slices.Contains(args, "--strip") {
		t.Error("--strip must be linux-only")
	}

	// Extra args come last so they can override.
	if args[len(args)-1] != "--hidden-import=x" {
		t.Errorf("expected extra args last, got %v", args)
	}
}

func TestResiduePaths(t *testing.T) {
	t.Parallel()

	cfg := &BuildConfig{AppName: "ppixel"}
	paths := cfg.ResiduePaths("/opt/app")

	want := []string{
		filepath.Join("/opt/app", "build"),
		filepath.Join("/opt/app", "ppixel.spec"),
	}
	if !slices.Equal(paths, want) {
		t.Errorf("expected %v, got %v", want, paths)
	}
}

func TestDistPath(t *testing.T) {
	t.Parallel()

	cfg := &BuildConfig{AppName: "ppixel"}
	got := cfg.DistPath("/opt/app")

	name := "ppixel"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if got != filepath.Join("/opt/app", "dist", name) {
		t.Errorf("unexpected dist path %q", got)
	}
}
