//go:build !nogui
// +build !nogui

// Package gui shows pages in a desktop window.
package gui

import (
	"sync"

	"fexplorer/internal/explorer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const appID = "io.github.fexplorer"

// Available reports whether the GUI is compiled in.
func Available() bool {
	return true
}

// Display implements explorer.Display in a fyne window. Show may be called
// from any goroutine; Run must own the main goroutine.
type Display struct {
	app    fyne.App
	win    fyne.Window
	clicks chan string

	mu      sync.Mutex
	buttons []*widget.Button
}

// New creates the application and its window.
func New(title string) *Display {
	return newDisplay(app.NewWithID(appID), title)
}

func newDisplay(a fyne.App, title string) *Display {
	d := &Display{
		app:    a,
		win:    a.NewWindow(title),
		clicks: make(chan string, 1),
	}
	d.win.Resize(fyne.NewSize(480, 600))
	d.win.SetCloseIntercept(func() { d.send("") })
	return d
}

// Run shows the window and runs the event loop until browse returns.
func (d *Display) Run(browse func()) {
	d.win.Show()
	go func() {
		browse()
		d.app.Quit()
	}()
	d.app.Run()
}

func (d *Display) Show(page explorer.Page) (string, error) {
	d.drain()
	if page.Title != "" {
		d.win.SetTitle(page.Title)
	}
	d.win.SetContent(d.build(page))
	d.win.Show()
	return <-d.clicks, nil
}

func (d *Display) build(page explorer.Page) fyne.CanvasObject {
	buttons := make([]*widget.Button, 0, len(page.Links))
	rows := make([]fyne.CanvasObject, 0, len(page.Links))
	for _, l := range page.Links {
		target := l.URL
		label := l.Label
		icon := d.icon(page, l)
		if l.IsDirectory && !l.Up {
			label += explorer.Separator
		}
		btn := widget.NewButtonWithIcon(label, icon, func() { d.send(target) })
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		buttons = append(buttons, btn)
		rows = append(rows, btn)
	}
	if len(rows) == 0 {
		rows = append(rows, widget.NewLabel("This folder is empty"))
	}

	d.mu.Lock()
	d.buttons = buttons
	d.mu.Unlock()

	location := widget.NewLabelWithStyle(page.Location, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	closeBtn := widget.NewButtonWithIcon("Close", theme.CancelIcon(), func() { d.send("") })
	header := container.NewBorder(nil, nil, nil, closeBtn, location)

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(container.NewVBox(rows...)))
}

func (d *Display) icon(page explorer.Page, l explorer.Link) fyne.Resource {
	if l.Up {
		return theme.NavigateBackIcon()
	}
	if asset, ok := page.Asset(string(l.Icon)); ok {
		return fyne.NewStaticResource(asset.Name, asset.Data)
	}
	if l.IsDirectory {
		return theme.FolderIcon()
	}
	return theme.FileIcon()
}

// send delivers a click unless one is already pending.
func (d *Display) send(choice string) {
	select {
	case d.clicks <- choice:
	default:
	}
}

func (d *Display) drain() {
	select {
	case <-d.clicks:
	default:
	}
}

func (d *Display) linkButtons() []*widget.Button {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buttons
}
