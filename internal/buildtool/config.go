// SPDX-License-Identifier: MPL-2.0

package buildtool

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// BuildConfigFileName is the optional per-project build settings file,
// looked up next to the entry point.
const BuildConfigFileName = "build.toml"

type (
	// BuildConfig holds the PyInstaller build settings. The zero value is
	// not usable; start from DefaultBuildConfig.
	BuildConfig struct {
		// AppName is the executable name produced by the build.
		AppName string `toml:"app_name"`
		// Script is the entry script compiled into the executable.
		Script string `toml:"script"`
		// Modules are the Python modules the build requires.
		Modules []string `toml:"modules"`
		// ExtraArgs are appended to the PyInstaller invocation.
		ExtraArgs []string `toml:"extra_args"`
	}
)

// DefaultBuildConfig returns the settings matching the original build
// pipeline: a single-file console executable named ppixel built from run.py.
func DefaultBuildConfig() *BuildConfig {
	return &BuildConfig{
		AppName: "ppixel",
		Script:  "run.py",
		Modules: []string{"pyinstaller", "pillow", "numpy"},
	}
}

// LoadBuildConfig reads build.toml from dir when present, layered over the
// defaults. A missing file is not an error.
func LoadBuildConfig(dir string) (*BuildConfig, error) {
	cfg := DefaultBuildConfig()

	path := filepath.Join(dir, BuildConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.AppName == "" || cfg.Script == "" {
		return nil, fmt.Errorf("%s: app_name and script must not be empty", path)
	}

	return cfg, nil
}

// PyInstallerArgs returns the full pyinstaller argument list for this
// configuration on the current platform.
func (c *BuildConfig) PyInstallerArgs() []string {
	args := []string{
		c.Script,
		"--onefile",
		"--console",
		"--name=" + c.AppName,
		"--log-level=WARN",
		"--clean",
		"--noconfirm",
	}
	if runtime.GOOS == "linux" {
		args = append(args, "--strip")
	}
	return append(args, c.ExtraArgs...)
}

// ResiduePaths returns the build leftovers to delete after compilation:
// the PyInstaller work directory and the generated spec file.
func (c *BuildConfig) ResiduePaths(dir string) []string {
	return []string{
		filepath.Join(dir, "build"),
		filepath.Join(dir, c.AppName+".spec"),
	}
}

// DistPath returns where the built executable lands.
func (c *BuildConfig) DistPath(dir string) string {
	name := c.AppName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(dir, "dist", name)
}
