package explorer

import (
	"net/url"
	"strings"

	"fexplorer/internal/errors"
)

const (
	DefaultOrigin = "http://localhost/"
	DefaultGoUp   = "go_up"
)

// SelectionKind tags what the user did on a page.
type SelectionKind int

const (
	SelectCancel SelectionKind = iota
	SelectGoUp
	SelectPick
)

func (k SelectionKind) String() string {
	switch k {
	case SelectGoUp:
		return "go_up"
	case SelectPick:
		return "pick"
	default:
		return "cancel"
	}
}

// Selection is the interpreted result of one Display call.
type Selection struct {
	Kind SelectionKind
	// Token is the raw URL for SelectPick.
	Token string
}

// URLs fixes the addresses links are published under. Entry links are
// Origin followed by the percent-encoded base name; the go-up link is
// Origin followed by GoUp.
type URLs struct {
	Origin string
	GoUp   string
}

func DefaultURLs() URLs {
	return URLs{Origin: DefaultOrigin, GoUp: DefaultGoUp}
}

// GoUpURL is the reserved URL for ascending one level.
func (u URLs) GoUpURL() string {
	return u.Origin + u.GoUp
}

// Entry returns the URL a display reports when e is clicked.
func (u URLs) Entry(e Entry) string {
	return u.Origin + url.PathEscape(e.BaseName())
}

// Links lists the clickable targets for ctx. The go-up link comes first
// and is left out at a root.
func (u URLs) Links(ctx NavigationContext) []Link {
	links := make([]Link, 0, len(ctx.Listings)+1)
	if !ctx.IsRoot {
		links = append(links, Link{Label: "..", Up: true, URL: u.GoUpURL(), Icon: IconDirectory, IsDirectory: true})
	}
	for _, e := range ctx.Listings {
		links = append(links, Link{
			Label:       e.BaseName(),
			URL:         u.Entry(e),
			Icon:        e.Icon,
			IsDirectory: e.IsDirectory,
		})
	}
	return links
}

// Parse interprets a raw display result. URLs outside Origin are an
// InvalidSelection error.
func (u URLs) Parse(raw string) (Selection, error) {
	switch {
	case raw == "":
		return Selection{Kind: SelectCancel}, nil
	case raw == u.GoUpURL():
		return Selection{Kind: SelectGoUp}, nil
	case strings.HasPrefix(raw, u.Origin):
		return Selection{Kind: SelectPick, Token: raw}, nil
	default:
		return Selection{}, errors.NewSelectionError("selection outside origin", raw, nil)
	}
}
