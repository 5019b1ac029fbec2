// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"ppixel-launcher/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "ppixel"
	// ConfigFileName is the name of the config file including extension.
	ConfigFileName = "launcher.toml"
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "PPIXEL"
)

// LoadOptions controls where Load looks for the configuration file.
type LoadOptions struct {
	// ConfigFilePath loads exactly this file when set (PPIXEL_CONFIG or a
	// caller override). Missing file is an error in this mode.
	ConfigFilePath string
	// AppDir is the resolved application directory; a launcher.toml there
	// takes precedence over the platform config directory.
	AppDir string
}

// ConfigDir returns the launcher configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the launcher configuration. Missing files are not an error:
// defaults apply, with PPIXEL_* environment variables layered on top.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	defaults := DefaultConfig()
	v.SetDefault("env_dir", defaults.EnvDir)
	v.SetDefault("entry_point", defaults.EntryPoint)
	v.SetDefault("activation", string(defaults.Activation))
	v.SetDefault("debug", defaults.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about; bind each one so PPIXEL_*
	// overrides reach the decoded struct.
	for _, key := range []string{"env_dir", "entry_point", "activation", "debug"} {
		_ = v.BindEnv(key)
	}

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Remove the file to fall back to defaults").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Valid activation modes are 'static' and 'script'").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// resolveConfigPath picks the config file to read, or "" for defaults only.
// Precedence: explicit path, then <AppDir>/launcher.toml, then the platform
// config directory.
func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	if opts.AppDir != "" {
		local := filepath.Join(opts.AppDir, ConfigFileName)
		if fileExists(local) {
			return local, nil
		}
	}

	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	global := filepath.Join(cfgDir, ConfigFileName)
	if fileExists(global) {
		return global, nil
	}

	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
