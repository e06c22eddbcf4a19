package explorer

import (
	"os"
)

// FileSystem is the directory enumeration and probing the browser needs.
// Paths are absolute and use Separator.
type FileSystem interface {
	// ReadDir returns the base names of the children of path.
	ReadDir(path string) ([]string, error)
	// IsDir reports whether path is a directory. It fails when path does
	// not exist or cannot be probed.
	IsDir(path string) (bool, error)
}

// OSFileSystem reads the local filesystem.
type OSFileSystem struct{}

func (OSFileSystem) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// IsDir follows symlinks.
func (OSFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
