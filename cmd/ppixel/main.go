// SPDX-License-Identifier: MPL-2.0

// The ppixel launcher: activates the virtual environment next to its own
// resolved location and hands the process off to run.py, forwarding every
// argument and propagating the exit code.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ppixel-launcher/internal/issue"
	"ppixel-launcher/internal/launcher"
	"ppixel-launcher/internal/tui"

	"github.com/spf13/cobra"
)

// rootCmd is deliberately transparent: flag parsing is disabled and no
// subcommands exist, so every argument (including -h and --version)
// belongs to the application, not to the launcher.
var rootCmd = &cobra.Command{
	Use:                "ppixel [args...]",
	Short:              "Launcher for the ppixel application",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runLaunch,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *launcher.ExitStatusError
		if errors.As(err, &exitErr) {
			// The entry point's own exit code, reported verbatim.
			os.Exit(int(exitErr.Code))
		}

		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, debugEnabled()))
		renderIssueHelp(err)
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderIssueHelp prints the rendered help text for known failure classes
// when debug output is enabled.
func renderIssueHelp(err error) {
	if !debugEnabled() {
		return
	}
	id := launcher.IssueFor(err)
	if id == 0 {
		return
	}
	if out, renderErr := issue.Get(id).Render("dark"); renderErr == nil {
		fmt.Fprintln(os.Stderr, out)
	}
}

func debugEnabled() bool {
	return os.Getenv("PPIXEL_DEBUG") != ""
}
