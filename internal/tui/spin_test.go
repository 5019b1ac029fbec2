// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"strings"
	"testing"
)

func TestNewSpinModel(t *testing.T) {
	t.Parallel()

	model := newSpinModel("Compiling...")

	if model.done {
		t.Error("expected model not to be done initially")
	}
	if model.title != "Compiling..." {
		t.Errorf("expected title 'Compiling...', got %q", model.title)
	}
	if model.Init() == nil {
		t.Error("expected Init to schedule the first tick")
	}
}

func TestSpinModel_DoneMessage(t *testing.T) {
	t.Parallel()

	taskErr := errors.New("pip failed")
	updated, cmd := newSpinModel("Installing...").Update(spinDoneMsg{err: taskErr})

	m, ok := updated.(spinModel)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	if !m.done {
		t.Error("expected model to be done")
	}
	if !errors.Is(m.err, taskErr) {
		t.Errorf("expected task error recorded, got %v", m.err)
	}
	if cmd == nil {
		t.Error("expected quit command after completion")
	}
}

func TestSpinModel_View(t *testing.T) {
	t.Parallel()

	model := newSpinModel("Checking build modules...")

	if view := model.View(); !strings.Contains(view, "Checking build modules...") {
		t.Errorf("expected title in view, got %q", view)
	}

	updated, _ := model.Update(spinDoneMsg{})
	if view := updated.(spinModel).View(); view != "" {
		t.Errorf("expected empty view when done, got %q", view)
	}
}

func TestSpinModel_IgnoresUnknownMessages(t *testing.T) {
	t.Parallel()

	updated, cmd := newSpinModel("Working...").Update("not a known message")

	if updated.(spinModel).done {
		t.Error("unknown message must not complete the spinner")
	}
	if cmd != nil {
		t.Error("unknown message must not schedule a command")
	}
}
