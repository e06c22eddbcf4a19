package styles

// DefaultPalette matches the "default" theme of the configuration.
var DefaultPalette = Palette{
	Primary: "#7B61FF",
	Success: "#73F59F",
	Info:    "#5A9",
	Muted:   "#666666",
	Error:   "#FF6B6B",
}

// Theme is the style set used when no configuration is applied.
var Theme = New(DefaultPalette)
