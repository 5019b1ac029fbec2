// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"ppixel-launcher/internal/config"
	"ppixel-launcher/internal/launcher"
	"ppixel-launcher/internal/tui"
	"ppixel-launcher/internal/venv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runLaunch is the whole launcher: resolve, activate, exec. It returns only
// when the bootstrap fails or when the platform lacks process replacement
// and the spawned entry point has terminated.
func runLaunch(cmd *cobra.Command, args []string) error {
	self, err := launcher.ResolveSelf("")
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFilePath: os.Getenv("PPIXEL_CONFIG"),
		AppDir:         self.Dir,
	})
	if err != nil {
		// A broken config must not strand the application: warn and launch
		// with defaults.
		fmt.Fprintln(os.Stderr, tui.WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, debugEnabled()))
		cfg = config.DefaultConfig()
	}

	var activator venv.Activator = venv.NewStaticActivator()
	if cfg.Activation == config.ActivationScript {
		activator = venv.NewScriptActivator()
	}

	return launcher.Launch(cmd.Context(), launcher.Options{
		Self:       self,
		Args:       args,
		EnvDir:     cfg.EnvDir,
		EntryPoint: cfg.EntryPoint,
		Activator:  activator,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     newLogger(cfg.Debug || debugEnabled()),
	})
}

func newLogger(debug bool) *log.Logger {
	if !debug {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.DebugLevel,
		Prefix: "ppixel",
	})
}
