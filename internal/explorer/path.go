package explorer

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Separator joins path segments. Browse paths always use a forward slash,
// including drive-style roots such as "sd:/".
const Separator = "/"

// Kind is the result of probing a candidate path.
type Kind int

const (
	KindMissing Kind = iota
	KindFile
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "missing"
	}
}

// IsRoot reports whether path contains exactly one separator.
func IsRoot(path string) bool {
	return strings.Count(path, Separator) == 1
}

// EnsureDirSuffix appends a separator unless path already ends with one.
func EnsureDirSuffix(path string) string {
	if strings.HasSuffix(path, Separator) {
		return path
	}
	return path + Separator
}

// JoinPath appends segment to current, inserting a separator only when
// current does not already end with one.
func JoinPath(current, segment string) string {
	if strings.HasSuffix(current, Separator) {
		return current + segment
	}
	return current + Separator + segment
}

// GoUp returns the parent directory of current, with a trailing separator.
// current must not be a root; callers check IsRoot first. At a root the
// result is empty.
func GoUp(current string) string {
	segments := strings.Split(current, Separator)
	drop := 1
	if strings.HasSuffix(current, Separator) {
		drop = 2
	}
	if drop > len(segments) {
		return ""
	}
	segments = append(segments[:len(segments)-drop], "")
	return strings.Join(segments, Separator)
}

// ResolvePick strips origin from the raw selection URL, percent-decodes
// the rest and joins it to current.
func ResolvePick(current, rawURL, origin string) string {
	segment := DecodeSegment(strings.TrimPrefix(rawURL, origin))
	return JoinPath(current, segment)
}

// DecodeSegment reverses %XX escaping. Malformed escapes are kept
// literally and invalid UTF-8 is replaced with U+FFFD; it never fails.
func DecodeSegment(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(buf)
	if err != nil {
		return strings.ToValidUTF8(string(buf), "�")
	}
	return string(decoded)
}

// Classify probes path on fsys.
func Classify(fsys FileSystem, path string) Kind {
	isDir, err := fsys.IsDir(path)
	switch {
	case err != nil:
		return KindMissing
	case isDir:
		return KindDirectory
	default:
		return KindFile
	}
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
