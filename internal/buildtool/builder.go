// SPDX-License-Identifier: MPL-2.0

package buildtool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"ppixel-launcher/internal/venv"

	"github.com/charmbracelet/log"
)

type (
	// Module is one installed Python module as reported by pip.
	Module struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	// Builder runs the build pipeline inside an activated virtual
	// environment.
	Builder struct {
		// BaseDir is the application directory (entry point, build residue).
		BaseDir string
		// Env is the located virtual environment.
		Env *venv.Env
		// Environ is the activated environment for tool invocations.
		Environ []string
		// Runner executes the tools.
		Runner CommandRunner
		// Logger receives debug diagnostics. Nil disables logging.
		Logger *log.Logger
	}
)

// New creates a Builder for the given application directory and environment.
func New(baseDir string, env *venv.Env, environ []string, runner CommandRunner, logger *log.Logger) *Builder {
	if runner == nil {
		runner = NewExecRunner()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{
		BaseDir: baseDir,
		Env:     env,
		Environ: environ,
		Runner:  runner,
		Logger:  logger,
	}
}

// InstalledModules lists the modules installed in the environment.
func (b *Builder) InstalledModules(ctx context.Context) ([]Module, error) {
	result, err := b.pip(ctx, "list", "--format=json")
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("pip list failed: %s", strings.TrimSpace(result.Stderr))
	}

	var modules []Module
	if err := json.Unmarshal([]byte(result.Stdout), &modules); err != nil {
		return nil, fmt.Errorf("failed to parse pip list output: %w", err)
	}
	return modules, nil
}

// MissingModules returns the required modules not installed in the
// environment, preserving the required order. Name comparison follows pip's
// normalization (case-insensitive, '-' and '_' equivalent).
func (b *Builder) MissingModules(ctx context.Context, required []string) ([]string, error) {
	installed, err := b.InstalledModules(ctx)
	if err != nil {
		return nil, err
	}

	have := make(map[string]struct{}, len(installed))
	for _, m := range installed {
		have[NormalizeModuleName(m.Name)] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := have[NormalizeModuleName(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// InstallModule installs a module into the environment.
func (b *Builder) InstallModule(ctx context.Context, name string) error {
	result, err := b.pip(ctx, "install", name)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("failed to install %s: %s", name, strings.TrimSpace(result.Stderr))
	}
	b.Logger.Debug("installed module", "name", name)
	return nil
}

// UninstallModule removes a module from the environment.
func (b *Builder) UninstallModule(ctx context.Context, name string) error {
	result, err := b.pip(ctx, "uninstall", "--yes", name)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("failed to uninstall %s: %s", name, strings.TrimSpace(result.Stderr))
	}
	b.Logger.Debug("uninstalled module", "name", name)
	return nil
}

// Compile runs PyInstaller with the configured arguments. PyInstaller
// reports some non-fatal conditions on stderr at WARN level; only a non-zero
// exit fails the build.
func (b *Builder) Compile(ctx context.Context, cfg *BuildConfig) error {
	spec := &RunSpec{
		Path: b.toolPath("pyinstaller"),
		Args: cfg.PyInstallerArgs(),
		Env:  b.Environ,
		Dir:  b.BaseDir,
	}
	b.Logger.Debug("compiling", "tool", spec.Path, "args", strings.Join(spec.Args, " "))

	result, err := b.Runner.Run(ctx, spec)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("pyinstaller exited with status %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// CleanResidue removes the build leftovers. Missing paths are ignored.
func (b *Builder) CleanResidue(cfg *BuildConfig) error {
	for _, path := range cfg.ResiduePaths(b.BaseDir) {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		b.Logger.Debug("removed residue", "path", path)
	}
	return nil
}

// pip invokes the environment's pip through its interpreter, which works
// even when the pip console script is absent.
func (b *Builder) pip(ctx context.Context, args ...string) (*RunResult, error) {
	spec := &RunSpec{
		Path: b.Env.Python,
		Args: append([]string{"-m", "pip"}, args...),
		Env:  b.Environ,
		Dir:  b.BaseDir,
	}
	return b.Runner.Run(ctx, spec)
}

// toolPath resolves a console script inside the environment's bin directory.
func (b *Builder) toolPath(name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(b.Env.BinDir, name)
}

// NormalizeModuleName applies PEP 503 name normalization.
func NormalizeModuleName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return name
}
