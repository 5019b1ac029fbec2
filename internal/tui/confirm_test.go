// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "yes long form", input: "yes\n", expected: true},
		{name: "yes uppercase", input: "Y\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "no long form", input: "no\n", expected: false},
		{name: "whitespace trimmed", input: "  y  \n", expected: true},
		{name: "re-asks on garbage", input: "maybe\nwhat\ny\n", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			got, err := Confirm(strings.NewReader(tt.input), &out, "Install pyinstaller?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Confirm() = %v, want %v", got, tt.expected)
			}
			if !strings.Contains(out.String(), "Install pyinstaller?") {
				t.Error("expected question in output")
			}
		})
	}
}

func TestConfirm_RepeatsQuestionOnGarbage(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	if _, err := Confirm(strings.NewReader("maybe\nn\n"), &out, "Proceed?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Count(out.String(), "Proceed?"); got != 2 {
		t.Errorf("expected question asked twice, got %d", got)
	}
}

func TestConfirm_EOF(t *testing.T) {
	t.Parallel()

	_, err := Confirm(strings.NewReader(""), io.Discard, "Proceed?")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}
