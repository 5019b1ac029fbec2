// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"ppixel-launcher/internal/buildtool"
	"ppixel-launcher/internal/tui"

	"github.com/spf13/cobra"
)

// buildCmd compiles the application into a standalone executable.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the application into a standalone executable",
	Long: `Compile the application's entry script into a single-file executable
with PyInstaller.

Missing build modules are reported before compilation; each can be
installed after confirmation (or automatically with --yes). Modules
installed during this run are offered for removal afterwards, and the
PyInstaller work directory and spec file are cleaned up on success.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	builder, cfg, err := prepare(ctx)
	if err != nil {
		return reportFailure(cmd, err)
	}

	var missing []string
	err = tui.Spin("Checking build modules...", func() error {
		var checkErr error
		missing, checkErr = builder.MissingModules(ctx, cfg.Modules)
		return checkErr
	})
	if err != nil {
		return reportFailure(cmd, fmt.Errorf("failed to check build modules: %w", err))
	}

	// Modules installed during this run, offered for removal afterwards.
	var installed []string
	for _, name := range missing {
		fmt.Fprintln(os.Stderr, tui.WarningStyle.Render("Missing module: ")+name)

		ok := assumeYes
		if !ok {
			ok, err = tui.Confirm(cmd.InOrStdin(), os.Stderr, "Install "+tui.CmdStyle.Render(name)+"?")
			if err != nil {
				return reportFailure(cmd, err)
			}
		}
		if !ok {
			return reportFailure(cmd, fmt.Errorf("cannot build without module %s", name))
		}

		err = tui.Spin("Installing "+name+"...", func() error {
			return builder.InstallModule(ctx, name)
		})
		if err != nil {
			return reportFailure(cmd, err)
		}
		installed = append(installed, name)
	}

	err = tui.Spin("Compiling "+cfg.Script+"...", func() error {
		return builder.Compile(ctx, cfg)
	})
	if err != nil {
		return reportFailure(cmd, err)
	}
	fmt.Fprintln(os.Stderr, tui.SuccessStyle.Render("Compiled: ")+cfg.DistPath(builder.BaseDir))

	if err := offerUninstall(cmd, builder, installed); err != nil {
		return reportFailure(cmd, err)
	}

	if err := builder.CleanResidue(cfg); err != nil {
		return reportFailure(cmd, err)
	}
	fmt.Fprintln(os.Stderr, tui.SuccessStyle.Render("Cleaned: ")+strings.Join(cfg.ResiduePaths(builder.BaseDir), ", "))

	return nil
}

// offerUninstall asks whether the modules installed during this run should be
// removed again. With --yes they stay installed, matching the silent path.
func offerUninstall(cmd *cobra.Command, builder *buildtool.Builder, installed []string) error {
	if len(installed) == 0 || assumeYes {
		return nil
	}

	for _, name := range installed {
		ok, err := tui.Confirm(cmd.InOrStdin(), os.Stderr, "Remove "+tui.CmdStyle.Render(name)+" installed for this build?")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		err = tui.Spin("Removing "+name+"...", func() error {
			return builder.UninstallModule(cmd.Context(), name)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// reportFailure prints the styled error itself and silences cobra's own
// reporting, then signals a non-zero exit through ExitError.
func reportFailure(cmd *cobra.Command, err error) error {
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	cmd.SilenceErrors = true
	return &ExitError{Code: 1}
}
