// Package tui is the terminal display: each page runs as its own
// bubbletea program, which returns once the user opens an entry, goes up
// or closes the view.
package tui

import (
	"fexplorer/internal/errors"
	"fexplorer/internal/explorer"
	"fexplorer/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
)

// Display implements explorer.Display in the terminal.
type Display struct {
	styles  styles.Styles
	options []tea.ProgramOption
}

// NewDisplay creates a terminal display. Program options are passed to
// every bubbletea program it starts; the alternate screen is used unless
// options are given.
func NewDisplay(st styles.Styles, options ...tea.ProgramOption) *Display {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Display{styles: st, options: options}
}

func (d *Display) Show(page explorer.Page) (string, error) {
	p := tea.NewProgram(NewModel(page, d.styles), d.options...)
	final, err := p.Run()
	if err != nil {
		return "", errors.WrapKind(err, errors.DisplayFailed, "run terminal display")
	}
	m, ok := final.(*Model)
	if !ok {
		return "", errors.WrapKind(errors.Newf("unexpected model %T", final), errors.DisplayFailed, "run terminal display")
	}
	return m.Choice(), nil
}
