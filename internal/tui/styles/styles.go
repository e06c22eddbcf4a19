package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors a Styles set is built from. Values are
// anything lipgloss.Color accepts: hex strings or ANSI numbers.
type Palette struct {
	Primary string
	Success string
	Info    string
	Muted   string
	Error   string
}

// Styles defines the core UI styles
type Styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Location   lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Directory  lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
}

// New builds the styles for a palette.
func New(p Palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)),
		Location: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Info)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Directory: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
	}
}
