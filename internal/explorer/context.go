package explorer

// NavigationContext is the snapshot handed to a Renderer for one step.
type NavigationContext struct {
	CurrentDir string
	IsRoot     bool
	Listings   []Entry
}

func NewContext(dir string, listings []Entry) NavigationContext {
	return NavigationContext{
		CurrentDir: dir,
		IsRoot:     IsRoot(dir),
		Listings:   listings,
	}
}
