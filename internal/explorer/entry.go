package explorer

import "strings"

// Icon names the image shown next to an entry.
type Icon string

const (
	IconFile      Icon = "file.png"
	IconDirectory Icon = "folder.png"
)

// Entry is one child of the listed directory.
type Entry struct {
	// Name is the fully qualified path of the child.
	Name        string
	Icon        Icon
	IsDirectory bool
}

func newEntry(name string, isDir bool) Entry {
	icon := IconFile
	if isDir {
		icon = IconDirectory
	}
	return Entry{Name: name, Icon: icon, IsDirectory: isDir}
}

// BaseName returns the last path segment of Name, the part a display
// links to relative to the current directory.
func (e Entry) BaseName() string {
	name := strings.TrimSuffix(e.Name, Separator)
	if i := strings.LastIndex(name, Separator); i >= 0 {
		return name[i+1:]
	}
	return name
}
