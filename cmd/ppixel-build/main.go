// SPDX-License-Identifier: MPL-2.0

// ppixel-build packages the ppixel application into a standalone executable
// with PyInstaller, using the virtual environment next to the launcher.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ppixel-launcher/internal/issue"
	"ppixel-launcher/internal/tui"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// assumeYes skips confirmation prompts
	assumeYes bool
	// appDir overrides the application directory
	appDir string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "ppixel-build",
		Short: "Build tooling for the ppixel application",
		Long: tui.TitleStyle.Render("ppixel-build") + tui.SubtitleStyle.Render(" - build tooling for the ppixel application") + `

ppixel-build compiles run.py into a standalone executable with PyInstaller,
running every tool inside the application's virtual environment. Missing
build modules are detected and can be installed on the spot, and temporary
installs are offered for removal once the build is done.

` + tui.SubtitleStyle.Render("Examples:") + `
  ppixel-build build        Compile the application
  ppixel-build deps         Show build module status
  ppixel-build clean        Remove build residue`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to all prompts")
	rootCmd.PersistentFlags().StringVar(&appDir, "dir", "", "application directory (default: the directory this binary resolves to)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(cleanCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

func newLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.DebugLevel,
		Prefix: "ppixel-build",
	})
}
