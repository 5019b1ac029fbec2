// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"ppixel-launcher/internal/tui"

	"github.com/spf13/cobra"
)

// cleanCmd removes the build residue without compiling.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build residue",
	Long: `Remove the PyInstaller work directory and the generated spec file
left behind by an interrupted or failed build. Missing paths are ignored.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	builder, cfg, err := prepare(cmd.Context())
	if err != nil {
		return reportFailure(cmd, err)
	}

	if err := builder.CleanResidue(cfg); err != nil {
		return reportFailure(cmd, err)
	}
	fmt.Fprintln(os.Stderr, tui.SuccessStyle.Render("Cleaned: ")+strings.Join(cfg.ResiduePaths(builder.BaseDir), ", "))
	return nil
}
