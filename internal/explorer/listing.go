package explorer

import (
	"sort"

	"fexplorer/internal/errors"

	"github.com/gobwas/glob"
)

// ListingBuilder turns a directory into an ordered slice of entries.
type ListingBuilder struct {
	fs     FileSystem
	hidden []glob.Glob
}

// NewListingBuilder compiles the hide patterns, which are matched against
// entry base names.
func NewListingBuilder(fsys FileSystem, hide ...string) (*ListingBuilder, error) {
	b := &ListingBuilder{fs: fsys}
	for _, pattern := range hide {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid hide pattern", pattern, errors.InvalidConfig, err)
		}
		b.hidden = append(b.hidden, g)
	}
	return b, nil
}

// BuildListing lists location on fsys without any hide patterns.
func BuildListing(fsys FileSystem, location string) ([]Entry, error) {
	return (&ListingBuilder{fs: fsys}).Build(location)
}

// Build enumerates location. Either the whole listing is returned or a
// DirectoryUnreadable error; there is no partial result.
func (b *ListingBuilder) Build(location string) ([]Entry, error) {
	names, err := b.fs.ReadDir(location)
	if err != nil {
		return nil, errors.NewFileError("directory cannot be read", location, errors.DirectoryUnreadable, err)
	}

	listing := make([]Entry, 0, len(names))
	for _, base := range names {
		if b.isHidden(base) {
			continue
		}
		name := JoinPath(location, base)
		isDir, err := b.fs.IsDir(name)
		if err != nil {
			isDir = false
		}
		listing = append(listing, newEntry(name, isDir))
	}

	sortListing(listing)
	return listing, nil
}

func (b *ListingBuilder) isHidden(base string) bool {
	for _, g := range b.hidden {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// sortListing orders by name ignoring ASCII case, then moves directories
// ahead of files. Both passes are stable and must stay separate.
func sortListing(listing []Entry) {
	sort.SliceStable(listing, func(i, j int) bool {
		return asciiLower(listing[i].Name) < asciiLower(listing[j].Name)
	})
	sort.SliceStable(listing, func(i, j int) bool {
		return listing[i].IsDirectory && !listing[j].IsDirectory
	})
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
