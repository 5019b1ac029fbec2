// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"ppixel-launcher/internal/buildtool"
	"ppixel-launcher/internal/tui"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// depsCmd shows the build module status of the virtual environment.
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show build module status",
	Long: `List the modules the build requires alongside what the virtual
environment actually has installed.`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

func runDeps(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	builder, cfg, err := prepare(ctx)
	if err != nil {
		return reportFailure(cmd, err)
	}

	var installed []buildtool.Module
	err = tui.Spin("Querying installed modules...", func() error {
		var listErr error
		installed, listErr = builder.InstalledModules(ctx)
		return listErr
	})
	if err != nil {
		return reportFailure(cmd, err)
	}

	versions := make(map[string]string, len(installed))
	for _, m := range installed {
		versions[buildtool.NormalizeModuleName(m.Name)] = m.Version
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Module", "Installed", "Status")

	missing := 0
	for _, name := range cfg.Modules {
		version, ok := versions[buildtool.NormalizeModuleName(name)]
		status := tui.SuccessStyle.Render("ok")
		if !ok {
			version = "-"
			status = tui.ErrorStyle.Render("missing")
			missing++
		}
		table.Append(name, version, status)
	}

	_ = table.Render()

	if missing > 0 {
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}
