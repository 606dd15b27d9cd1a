package config

import (
	"regexp"
	"slices"
	"strings"
)

// PathSeparator joins segments in the textual form of a Path.
const PathSeparator = ":"

var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Path is an immutable, ordered sequence of configuration keys.
// The zero value is the root path.
type Path struct {
	segments []string
}

// Root returns the empty path.
func Root() Path {
	return Path{}
}

// NewPath builds a Path from segments. Each segment must be non-empty and
// consist of ASCII letters, digits, '_' or '-'.
func NewPath(segments ...string) (Path, error) {
	for i, segment := range segments {
		if !segmentPattern.MatchString(segment) {
			return Path{}, invalidArgument("path segment %d %q is not a valid key", i, segment)
		}
	}

	if len(segments) == 0 {
		return Path{}, nil
	}

	return Path{segments: slices.Clone(segments)}, nil
}

// MustPath is like NewPath but panics on an invalid segment.
func MustPath(segments ...string) Path {
	path, err := NewPath(segments...)
	if err != nil {
		panic(err)
	}

	return path
}

// ParsePath splits a colon-separated path such as "database:connection".
// The empty string is the root path.
func ParsePath(text string) (Path, error) {
	if text == "" {
		return Path{}, nil
	}

	return NewPath(strings.Split(text, PathSeparator)...)
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// IsRoot reports whether p has no segments.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Child returns a new path with segment appended.
func (p Path) Child(segment string) (Path, error) {
	next := make([]string, 0, len(p.segments)+1)
	next = append(next, p.segments...)
	next = append(next, segment)

	return NewPath(next...)
}

// Equal reports structural equality.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

func (p Path) String() string {
	return strings.Join(p.segments, PathSeparator)
}
