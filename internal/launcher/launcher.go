// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ppixel-launcher/internal/issue"
	"ppixel-launcher/internal/venv"

	"github.com/charmbracelet/log"
)

// DefaultEntryPoint is the application entry point script expected next to
// the launcher.
const DefaultEntryPoint = "run.py"

var (
	// ErrSelfResolve is wrapped by errors from ResolveSelf.
	ErrSelfResolve = errors.New("cannot resolve launcher location")
	// ErrActivationFailed is wrapped when the activator rejects the venv.
	ErrActivationFailed = errors.New("environment activation failed")
	// ErrEntryPointNotFound is wrapped when the entry script is absent.
	ErrEntryPointNotFound = errors.New("entry point not found")
	// ErrExecFailed is wrapped when the hand-off itself fails.
	ErrExecFailed = errors.New("entry point execution failed")
)

type (
	// Self is the launcher's resolved identity: its canonical path with all
	// symlinks followed, and the directory the venv and entry point are
	// expected in.
	Self struct {
		// Path is the canonical absolute path of the launcher binary.
		Path string
		// Dir is the canonical parent directory of Path.
		Dir string
	}

	// Options configures a Launch. Zero values select production defaults.
	Options struct {
		// Self is the resolved launcher identity from ResolveSelf.
		Self *Self
		// Args are the caller-supplied arguments, forwarded verbatim.
		Args []string
		// EnvDir is the venv directory name under Self.Dir (default ".venv").
		EnvDir string
		// EntryPoint is the entry script name under Self.Dir (default "run.py").
		EntryPoint string
		// Activator builds the environment overlay (default static).
		Activator venv.Activator
		// Executor performs the hand-off (default platform executor).
		Executor Executor
		// Environ is the host environment snapshot (default os.Environ()).
		Environ []string
		// Stdin, Stdout, Stderr are forwarded on the spawn path.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Logger receives debug diagnostics. Nil disables logging.
		Logger *log.Logger
	}
)

// ResolveSelf canonicalizes the launcher's own path, following symlinks
// fully, and derives the base directory. An empty invoked path resolves the
// running executable.
func ResolveSelf(invoked string) (*Self, error) {
	if invoked == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, issue.WrapWithOperation(fmt.Errorf("%w: %w", ErrSelfResolve, err), "resolve launcher location")
		}
		invoked = exe
	}

	abs, err := filepath.Abs(invoked)
	if err != nil {
		return nil, issue.WrapWithContext(fmt.Errorf("%w: %w", ErrSelfResolve, err), "resolve launcher location", invoked)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, issue.WrapWithContext(fmt.Errorf("%w: %w", ErrSelfResolve, err), "resolve launcher location", abs)
	}

	return &Self{Path: resolved, Dir: filepath.Dir(resolved)}, nil
}

// Launch runs the bootstrap sequence and hands the process to the entry
// point. With a replacing executor it only returns on failure. With a
// spawning executor it returns nil after a zero exit, or *ExitStatusError
// carrying the entry point's non-zero exit code.
func Launch(ctx context.Context, opts Options) error {
	self := opts.Self
	if self == nil {
		resolved, err := ResolveSelf("")
		if err != nil {
			return err
		}
		self = resolved
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("resolved launcher", "path", self.Path, "dir", self.Dir)

	env, err := venv.Locate(self.Dir, opts.EnvDir)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("activate virtual environment").
			WithResource(self.Dir).
			WithSuggestion("Create the environment with 'python -m venv .venv'").
			WithSuggestion("Install the application dependencies with 'pip install -r requirements.txt'").
			Wrap(err).
			BuildError()
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	activator := opts.Activator
	if activator == nil {
		activator = venv.NewStaticActivator()
	}

	overlay, err := activator.Activate(ctx, env, environ)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("activate virtual environment").
			WithResource(env.Activate).
			WithSuggestion("Recreate the environment with 'python -m venv .venv'").
			Wrap(fmt.Errorf("%w: %w", ErrActivationFailed, err)).
			BuildError()
	}
	logger.Debug("activated environment", "activator", activator.Name(), "root", env.Root)

	entry := filepath.Join(self.Dir, entryPointName(opts.EntryPoint))
	if info, err := os.Stat(entry); err != nil || !info.Mode().IsRegular() {
		return issue.NewErrorContext().
			WithOperation("locate entry point").
			WithResource(entry).
			WithSuggestion("The launcher must sit in the application directory next to " + entryPointName(opts.EntryPoint)).
			Wrap(fmt.Errorf("%w: %s", ErrEntryPointNotFound, entry)).
			BuildError()
	}

	executor := opts.Executor
	if executor == nil {
		executor = DefaultExecutor()
	}

	spec := &ExecSpec{
		Path:   env.Python,
		Argv:   append([]string{env.Python, entry}, opts.Args...),
		Env:    overlay.Apply(environ),
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	}
	logger.Debug("handing off to entry point", "executor", executor.Name(), "entry", entry, "args", len(opts.Args))

	code, err := executor.Exec(ctx, spec)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("execute entry point").
			WithResource(entry).
			WithSuggestion("Check that the environment interpreter is runnable: " + env.Python).
			Wrap(fmt.Errorf("%w: %w", ErrExecFailed, err)).
			BuildError()
	}
	if !code.IsSuccess() {
		return &ExitStatusError{Code: code}
	}
	return nil
}

func entryPointName(name string) string {
	if name == "" {
		return DefaultEntryPoint
	}
	return name
}
