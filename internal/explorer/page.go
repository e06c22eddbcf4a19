package explorer

// Asset is a static file served alongside rendered markup.
type Asset struct {
	Name        string
	ContentType string
	Data        []byte
}

// Link is one clickable target on a page.
type Link struct {
	Label       string
	URL         string
	Icon        Icon
	IsDirectory bool
	Up          bool // the go-up link
}

// Page is everything a Display needs to present one step.
type Page struct {
	Title    string
	Location string // directory on show
	Origin   string // prefix of every link URL
	Markup   string
	Assets   []Asset
	Links    []Link
}

// Asset returns the named asset, if present.
func (p Page) Asset(name string) (Asset, bool) {
	for _, a := range p.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// Renderer turns a NavigationContext into a Page.
type Renderer interface {
	Render(ctx NavigationContext) (Page, error)
}

// Display presents a page and blocks until the user clicks a link or
// dismisses the view. It returns the clicked URL, or "" when dismissed.
type Display interface {
	Show(page Page) (string, error)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(page Page) (string, error)

func (f DisplayFunc) Show(page Page) (string, error) {
	return f(page)
}
