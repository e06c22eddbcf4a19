package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"fexplorer/internal/errors"
	"fexplorer/internal/explorer"
	"fexplorer/internal/tui/styles"
)

const terminalFile = "terminal.tmpl"

// Terminal renders the header shown above the TUI display's entry list.
type Terminal struct {
	tpl   *template.Template
	urls  explorer.URLs
	title string
}

type terminalData struct {
	Title       string
	CurrentDir  string
	IsRoot      bool
	Directories int
	Files       int
}

func NewTerminal(urls explorer.URLs, title string, theme styles.Styles) (*Terminal, error) {
	funcs := template.FuncMap{
		"title":    func(s string) string { return theme.Title.Render(s) },
		"location": func(s string) string { return theme.Location.Render(s) },
		"dim":      func(s string) string { return theme.Help.Render(s) },
		"summary":  summary,
	}
	tpl, err := template.New(terminalFile).Funcs(funcs).ParseFS(resources, "resources/"+terminalFile)
	if err != nil {
		return nil, errors.WrapKind(err, errors.RenderFailed, "parse terminal template")
	}
	return &Terminal{tpl: tpl, urls: urls, title: title}, nil
}

func (r *Terminal) Render(ctx explorer.NavigationContext) (explorer.Page, error) {
	data := terminalData{
		Title:      r.title,
		CurrentDir: ctx.CurrentDir,
		IsRoot:     ctx.IsRoot,
	}
	for _, e := range ctx.Listings {
		if e.IsDirectory {
			data.Directories++
		} else {
			data.Files++
		}
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, terminalFile, data); err != nil {
		return explorer.Page{}, errors.WrapKind(err, errors.RenderFailed, "execute terminal template")
	}

	return explorer.Page{
		Title:    r.title,
		Location: ctx.CurrentDir,
		Origin:   r.urls.Origin,
		Markup:   strings.TrimRight(buf.String(), "\n"),
		Links:    r.urls.Links(ctx),
	}, nil
}

func summary(dirs, files int) string {
	return fmt.Sprintf("%s, %s", plural(dirs, "folder"), plural(files, "file"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
