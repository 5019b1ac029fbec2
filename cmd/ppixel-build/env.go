// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"os"

	"ppixel-launcher/internal/buildtool"
	"ppixel-launcher/internal/issue"
	"ppixel-launcher/internal/launcher"
	"ppixel-launcher/internal/venv"
)

// prepare resolves the application directory, locates its virtual
// environment, activates it into an overlay and returns a Builder plus the
// build configuration. Every build command starts here.
func prepare(ctx context.Context) (*buildtool.Builder, *buildtool.BuildConfig, error) {
	dir := appDir
	if dir == "" {
		self, err := launcher.ResolveSelf("")
		if err != nil {
			return nil, nil, err
		}
		dir = self.Dir
	}

	env, err := venv.Locate(dir, venv.DefaultDirName)
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("locating virtual environment").
			WithResource(dir).
			WithSuggestion("Create the environment with 'python -m venv .venv' next to the application").
			Wrap(err).
			BuildError()
	}

	overlay, err := venv.NewStaticActivator().Activate(ctx, env, os.Environ())
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("activating virtual environment").
			WithResource(env.Root).
			Wrap(err).
			BuildError()
	}

	cfg, err := buildtool.LoadBuildConfig(dir)
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("loading build configuration").
			WithResource(dir).
			WithSuggestion("Check " + buildtool.BuildConfigFileName + " for syntax errors").
			Wrap(err).
			BuildError()
	}

	builder := buildtool.New(dir, env, overlay.Apply(os.Environ()), nil, newLogger())
	return builder, cfg, nil
}
