package main

import (
	"fmt"
	"io"

	"fexplorer/internal/config"
	"fexplorer/internal/errors"
	"fexplorer/internal/explorer"
	"fexplorer/internal/gui"
	"fexplorer/internal/log"
	"fexplorer/internal/render"
	"fexplorer/internal/tui"
	"fexplorer/internal/tui/styles"
	"fexplorer/internal/web"
)

// session pairs a renderer with the display that shows its pages.
type session struct {
	renderer explorer.Renderer
	display  explorer.Display
	// run calls browse on whichever goroutine the display needs.
	run   func(browse func())
	close func() error
}

func direct(browse func()) { browse() }

func noClose() error { return nil }

// openSession is replaced in tests.
var openSession = newSession

func newSession(cfg *config.Config, errOut io.Writer) (*session, error) {
	urls := explorer.URLs{Origin: cfg.Browser.Origin, GoUp: cfg.Browser.GoUp}

	switch cfg.Display.Mode {
	case config.DisplayWeb:
		r, err := render.NewHTML(urls, cfg.Display.Title)
		if err != nil {
			return nil, err
		}
		srv := web.NewServer(cfg.Display.Listen, log.Default())
		addr, err := srv.Start()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(errOut, "Open %s in your browser\n", addr)
		return &session{renderer: r, display: srv, run: direct, close: srv.Close}, nil

	case config.DisplayGUI:
		if !gui.Available() {
			return nil, errors.NewConfigError("GUI not available in this build", "display.mode", errors.InvalidConfig, nil)
		}
		r, err := render.NewHTML(urls, cfg.Display.Title)
		if err != nil {
			return nil, err
		}
		d := gui.New(cfg.Display.Title)
		return &session{renderer: r, display: d, run: d.Run, close: noClose}, nil

	default:
		theme := styles.New(styles.Palette{
			Primary: cfg.Theme.Primary,
			Success: cfg.Theme.Success,
			Info:    cfg.Theme.Info,
			Muted:   cfg.Theme.Muted,
			Error:   cfg.Theme.Error,
		})
		r, err := render.NewTerminal(urls, cfg.Display.Title, theme)
		if err != nil {
			return nil, err
		}
		return &session{renderer: r, display: tui.NewDisplay(theme), run: direct, close: noClose}, nil
	}
}
