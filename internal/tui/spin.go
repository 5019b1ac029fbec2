// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	// spinModel animates a spinner next to a title while a task runs in the
	// background, quitting when the task reports completion.
	spinModel struct {
		title   string
		spinner spinner.Model
		err     error
		done    bool
	}

	// spinDoneMsg is sent when the background task completes.
	spinDoneMsg struct {
		err error
	}
)

func newSpinModel(title string) spinModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Line),
		spinner.WithStyle(WarningStyle),
	)
	return spinModel{title: title, spinner: s}
}

// Init implements tea.Model.
func (m spinModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m spinModel) View() string {
	if m.done {
		return ""
	}
	return m.title + " " + m.spinner.View()
}

// Spin runs fn while animating a spinner with the given title, then returns
// fn's error. The spinner renders to stderr so captured stdout stays clean.
func Spin(title string, fn func() error) error {
	p := tea.NewProgram(newSpinModel(title), tea.WithOutput(os.Stderr))

	go func() {
		p.Send(spinDoneMsg{err: fn()})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(spinModel); ok {
		return m.err
	}
	return nil
}
