// Package render turns a navigation context into pages for the displays:
// an HTML page with its stylesheet and icons for the web and GUI displays,
// and a styled terminal header for the TUI display.
package render

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"net/url"

	"fexplorer/internal/errors"
	"fexplorer/internal/explorer"
)

// ControlPrefix holds the page's own paths: the assets and the close
// control. Entry names cannot contain a separator, so no entry link
// starts with it.
const ControlPrefix = "_fexplorer/"

// DismissSegment is the link path the HTML page uses for its close
// control. The web display reports a click on it as a dismissed view.
const DismissSegment = ControlPrefix + "dismiss"

const (
	pageFile  = "index.html"
	styleFile = "style.css"
)

//go:embed resources
var resources embed.FS

// Assets returns the stylesheet and the two icons in a fixed order.
func Assets() []explorer.Asset {
	return []explorer.Asset{
		mustAsset(styleFile, "text/css; charset=utf-8"),
		mustAsset(string(explorer.IconDirectory), "image/png"),
		mustAsset(string(explorer.IconFile), "image/png"),
	}
}

func mustAsset(name, contentType string) explorer.Asset {
	data, err := resources.ReadFile("resources/" + name)
	if err != nil {
		panic("render: missing embedded resource " + name)
	}
	return explorer.Asset{Name: name, ContentType: contentType, Data: data}
}

// HTML renders the listing page.
type HTML struct {
	tpl   *htmltemplate.Template
	urls  explorer.URLs
	title string
}

type htmlEntry struct {
	Label       string
	Href        string
	Icon        explorer.Icon
	IsDirectory bool
}

type htmlData struct {
	Title       string
	CurrentDir  string
	IsRoot      bool
	GoUpHref    string
	DismissHref string
	AssetPrefix string
	Entries     []htmlEntry
}

func NewHTML(urls explorer.URLs, title string) (*HTML, error) {
	tpl, err := htmltemplate.ParseFS(resources, "resources/"+pageFile)
	if err != nil {
		return nil, errors.WrapKind(err, errors.RenderFailed, "parse page template")
	}
	return &HTML{tpl: tpl, urls: urls, title: title}, nil
}

func (h *HTML) Render(ctx explorer.NavigationContext) (explorer.Page, error) {
	data := htmlData{
		Title:       h.title,
		CurrentDir:  ctx.CurrentDir,
		IsRoot:      ctx.IsRoot,
		GoUpHref:    "./" + h.urls.GoUp,
		DismissHref: "./" + DismissSegment,
		AssetPrefix: "./" + ControlPrefix,
		Entries:     make([]htmlEntry, 0, len(ctx.Listings)),
	}
	for _, e := range ctx.Listings {
		data.Entries = append(data.Entries, htmlEntry{
			Label:       e.BaseName(),
			Href:        "./" + url.PathEscape(e.BaseName()),
			Icon:        e.Icon,
			IsDirectory: e.IsDirectory,
		})
	}

	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, pageFile, data); err != nil {
		return explorer.Page{}, errors.WrapKind(err, errors.RenderFailed, "execute page template")
	}

	return explorer.Page{
		Title:    h.title,
		Location: ctx.CurrentDir,
		Origin:   h.urls.Origin,
		Markup:   buf.String(),
		Assets:   Assets(),
		Links:    h.urls.Links(ctx),
	}, nil
}
