//go:build nogui
// +build nogui

package gui

import (
	"fexplorer/internal/errors"
	"fexplorer/internal/explorer"
)

// Available reports whether the GUI is compiled in.
func Available() bool {
	return false
}

// Display is a stub for builds with the GUI disabled.
type Display struct{}

func New(title string) *Display {
	return &Display{}
}

// Run calls browse directly.
func (d *Display) Run(browse func()) {
	browse()
}

func (d *Display) Show(page explorer.Page) (string, error) {
	return "", errors.WrapKind(errors.New("GUI not available in this build"), errors.DisplayFailed, "show page")
}
