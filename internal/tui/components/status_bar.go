package components

import (
	"fmt"

	"fexplorer/internal/explorer"
	"fexplorer/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar describes the focused link: where it points and its position
// in the list.
type StatusBar struct {
	link     explorer.Link
	position int
	total    int
	muted    lipgloss.Style
	accent   lipgloss.Style
}

func NewStatusBar(st styles.Styles) *StatusBar {
	return &StatusBar{muted: st.Help, accent: st.Directory}
}

// Focus records the link under the cursor. position is 1-based.
func (s *StatusBar) Focus(link explorer.Link, position, total int) {
	s.link = link
	s.position = position
	s.total = total
}

// Clear leaves nothing focused.
func (s *StatusBar) Clear() {
	*s = StatusBar{muted: s.muted, accent: s.accent}
}

// Target is the URL the focused link reports, or "".
func (s *StatusBar) Target() string {
	return s.link.URL
}

func (s *StatusBar) View() string {
	if s.total == 0 {
		return ""
	}
	kind := "file"
	switch {
	case s.link.Up:
		kind = "parent"
	case s.link.IsDirectory:
		kind = "folder"
	}
	counter := s.muted.Render(fmt.Sprintf("%d/%d", s.position, s.total))
	return counter + " " + s.accent.Render(kind) + " " + s.muted.Render(s.link.URL)
}
