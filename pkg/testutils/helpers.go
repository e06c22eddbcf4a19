package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fexplorer/internal/explorer"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		err := os.WriteFile(path, []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTree creates the given relative paths under dir. Paths ending in
// a slash become directories, everything else an empty file.
func CreateTree(t *testing.T, dir string, paths ...string) {
	for _, p := range paths {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, nil, 0644))
	}
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}

// MemFS is an in-memory explorer.FileSystem. Paths use forward slashes;
// a path added with a trailing slash is a directory.
type MemFS struct {
	dirs       map[string]bool
	files      map[string]bool
	children   map[string][]string
	unreadable map[string]bool
}

func NewMemFS(paths ...string) *MemFS {
	m := &MemFS{
		dirs:       map[string]bool{},
		files:      map[string]bool{},
		children:   map[string][]string{},
		unreadable: map[string]bool{},
	}
	for _, p := range paths {
		m.Add(p)
	}
	return m
}

// Add inserts p and any missing parent directories.
func (m *MemFS) Add(p string) {
	key := memKey(p)
	if strings.HasSuffix(p, "/") {
		m.addDir(key)
	} else if !m.files[key] {
		m.files[key] = true
		m.link(key)
	}
}

// Deny makes ReadDir on p fail as if permission were denied.
func (m *MemFS) Deny(p string) {
	m.unreadable[memKey(p)] = true
}

func (m *MemFS) ReadDir(path string) ([]string, error) {
	key := memKey(path)
	if m.unreadable[key] {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrPermission)
	}
	if !m.dirs[key] {
		if m.files[key] {
			return nil, fmt.Errorf("readdir %s: not a directory", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return append([]string(nil), m.children[key]...), nil
}

func (m *MemFS) IsDir(path string) (bool, error) {
	key := memKey(path)
	switch {
	case m.dirs[key]:
		return true, nil
	case m.files[key] && !strings.HasSuffix(path, "/"):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, os.ErrNotExist)
	}
}

func (m *MemFS) addDir(key string) {
	if m.dirs[key] {
		return
	}
	m.dirs[key] = true
	m.link(key)
}

func (m *MemFS) link(key string) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return
	}
	parent := key[:i]
	m.addDir(parent)
	m.children[parent] = append(m.children[parent], key[i+1:])
}

func memKey(p string) string {
	return strings.TrimSuffix(p, "/")
}

// ScriptedDisplay replays canned clicks and records every page shown.
// Once the script runs out it reports a dismissed view.
type ScriptedDisplay struct {
	Clicks []string
	Pages  []explorer.Page
	Err    error
}

func (d *ScriptedDisplay) Show(page explorer.Page) (string, error) {
	d.Pages = append(d.Pages, page)
	if d.Err != nil {
		return "", d.Err
	}
	if len(d.Clicks) == 0 {
		return "", nil
	}
	click := d.Clicks[0]
	d.Clicks = d.Clicks[1:]
	return click, nil
}

// RecordingRenderer builds a minimal page and keeps each context it saw.
type RecordingRenderer struct {
	URLs     explorer.URLs
	Contexts []explorer.NavigationContext
	Err      error
}

func (r *RecordingRenderer) Render(ctx explorer.NavigationContext) (explorer.Page, error) {
	r.Contexts = append(r.Contexts, ctx)
	if r.Err != nil {
		return explorer.Page{}, r.Err
	}
	urls := r.URLs
	if urls.Origin == "" {
		urls = explorer.DefaultURLs()
	}
	return explorer.Page{Title: ctx.CurrentDir, Location: ctx.CurrentDir, Markup: ctx.CurrentDir, Links: urls.Links(ctx)}, nil
}
