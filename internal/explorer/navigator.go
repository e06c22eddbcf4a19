// Package explorer implements one-level-at-a-time directory browsing: it
// lists a directory, hands the listing to a Renderer and a blocking
// Display, and resolves the single link the user clicked into either the
// next directory to browse or the final selected path.
package explorer

import (
	"fexplorer/internal/errors"
	"fexplorer/internal/log"
)

// Navigator drives the browse loop. It is not safe for concurrent use; a
// process runs one browsing session at a time.
type Navigator struct {
	start    string
	fs       FileSystem
	urls     URLs
	hide     []string
	renderer Renderer
	display  Display
	listing  *ListingBuilder
	log      *log.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithFileSystem replaces the local filesystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(n *Navigator) {
		n.fs = fsys
	}
}

// WithURLs sets the origin and go-up URL the display reports.
func WithURLs(urls URLs) Option {
	return func(n *Navigator) {
		n.urls = urls
	}
}

// WithHidden hides entries whose base name matches any glob pattern.
func WithHidden(patterns ...string) Option {
	return func(n *Navigator) {
		n.hide = append(n.hide, patterns...)
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(l *log.Logger) Option {
	return func(n *Navigator) {
		n.log = l
	}
}

// New creates a Navigator that starts browsing at start. A trailing
// separator is added to start when missing.
func New(start string, renderer Renderer, display Display, opts ...Option) (*Navigator, error) {
	if start == "" {
		return nil, errors.NewFileError("starting folder is empty", "", errors.InvalidPath, nil)
	}
	if renderer == nil || display == nil {
		return nil, errors.New("navigator needs a renderer and a display")
	}

	n := &Navigator{
		start:    EnsureDirSuffix(start),
		fs:       OSFileSystem{},
		urls:     DefaultURLs(),
		renderer: renderer,
		display:  display,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = log.Default()
	}

	listing, err := NewListingBuilder(n.fs, n.hide...)
	if err != nil {
		return nil, err
	}
	n.listing = listing
	return n, nil
}

// Start returns the normalized starting directory.
func (n *Navigator) Start() string {
	return n.start
}

// Browse runs steps from the starting directory until the user picks a
// file or leaves, and returns the selected path. Only a failure to list a
// directory or a collaborator failure is returned as an error.
func (n *Navigator) Browse() (string, error) {
	path := n.start
	for {
		next, done, err := n.Step(path)
		if err != nil {
			return path, err
		}
		if done {
			n.log.With(log.F("path", next)).Info("selection finished")
			return next, nil
		}
		path = next
	}
}

// Step performs a single transition from browsing path. When done is
// false, next is a directory ending with Separator to browse next;
// otherwise next is the final selection.
func (n *Navigator) Step(path string) (next string, done bool, err error) {
	listing, err := n.listing.Build(path)
	if err != nil {
		return path, true, err
	}

	ctx := NewContext(path, listing)
	n.log.With(log.F("path", path), log.F("entries", len(listing)), log.F("root", ctx.IsRoot)).Debug("browsing")

	page, err := n.renderer.Render(ctx)
	if err != nil {
		return path, true, errors.WrapKind(err, errors.RenderFailed, "render listing")
	}
	raw, err := n.display.Show(page)
	if err != nil {
		return path, true, errors.WrapKind(err, errors.DisplayFailed, "display listing")
	}

	sel, err := n.urls.Parse(raw)
	if err != nil {
		n.log.With(log.F("path", path)).Warnf("ignoring selection: %v", err)
		return path, true, nil
	}

	var candidate string
	switch sel.Kind {
	case SelectCancel:
		return path, true, nil
	case SelectGoUp:
		if ctx.IsRoot {
			n.log.With(log.F("path", path)).Warn("ignoring go up at root")
			return path, true, nil
		}
		candidate = GoUp(path)
	case SelectPick:
		candidate = ResolvePick(path, sel.Token, n.urls.Origin)
	}

	kind := Classify(n.fs, candidate)
	n.log.With(log.F("candidate", candidate), log.F("kind", kind.String())).Debug("resolved selection")

	switch kind {
	case KindDirectory:
		return EnsureDirSuffix(candidate), false, nil
	case KindFile:
		return candidate, true, nil
	default:
		n.log.With(log.F("candidate", candidate)).Warn("selection does not exist, keeping current path")
		return path, true, nil
	}
}
