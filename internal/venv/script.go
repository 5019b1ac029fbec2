// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ScriptActivator activates an environment by sourcing its real activation
// script with the embedded mvdan/sh interpreter. The interpreter runs against
// a snapshot of the host environment, so nothing touches the process
// environment; exported variables the script sets or removes are diffed into
// an Overlay afterwards.
//
// Use this over StaticActivator when the venv carries a customized activate
// script whose effects the layout conventions cannot predict.
type ScriptActivator struct{}

// NewScriptActivator creates a new ScriptActivator.
func NewScriptActivator() *ScriptActivator {
	return &ScriptActivator{}
}

// Name returns the activator name.
func (a *ScriptActivator) Name() string { return "script" }

// Activate sources env.Activate and captures its exported variable changes.
// Any failure (parse error, runtime error, non-zero exit) discards the whole
// run; a partially executed script never yields a partial overlay.
func (a *ScriptActivator) Activate(ctx context.Context, env *Env, host []string) (*Overlay, error) {
	quoted, err := syntax.Quote(env.Activate, syntax.LangBash)
	if err != nil {
		return nil, fmt.Errorf("failed to quote activation script path: %w", err)
	}

	source := ". " + quoted
	prog, err := syntax.NewParser().Parse(strings.NewReader(source), "activate")
	if err != nil {
		return nil, fmt.Errorf("failed to parse activation command: %w", err)
	}

	var stderr bytes.Buffer
	runner, err := interp.New(
		interp.Dir(env.Root),
		interp.Env(expand.ListEnviron(host...)),
		interp.StdIO(nil, &stderr, &stderr),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shell interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("activation script failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("activation script failed: %w", err)
	}

	overlay := NewOverlay()
	for name, v := range runner.Vars {
		switch {
		case v.Kind == expand.String && v.Exported:
			if value, found := LookupEnv(host, name); !found || value != v.Str {
				overlay.Set[name] = v.Str
			}
		case v.Kind == expand.Unset:
			if _, found := LookupEnv(host, name); found {
				overlay.Unset = append(overlay.Unset, name)
			}
		}
	}

	return overlay, nil
}
