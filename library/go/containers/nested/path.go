package nested

import "strings"

const (
	separator = '.'
	escape    = '\\'
)

// Path is a sequence of map keys and list indexes.
type Path []string

// ParsePath splits dotted path s into segments. A backslash makes the next
// character part of the segment, so `a\.b` is the single key "a.b".
// Empty s is the root path and a lone backslash is the path of the single
// empty key.
func ParsePath(s string) Path {
	switch s {
	case "":
		return Path{}
	case string(escape):
		return Path{""}
	}

	var (
		res     Path
		segment strings.Builder
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			segment.WriteRune(r)
			escaped = false
		case r == escape:
			escaped = true
		case r == separator:
			res = append(res, segment.String())
			segment.Reset()
		default:
			segment.WriteRune(r)
		}
	}
	if escaped {
		segment.WriteRune(escape)
	}
	return append(res, segment.String())
}

// String is the inverse of ParsePath.
func (p Path) String() string {
	if len(p) == 1 && p[0] == "" {
		return string(escape)
	}

	var b strings.Builder
	for i, segment := range p {
		if i > 0 {
			b.WriteRune(separator)
		}
		for _, r := range segment {
			if r == separator || r == escape {
				b.WriteRune(escape)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Child returns a new path extended by segments.
func (p Path) Child(segments ...string) Path {
	res := make(Path, 0, len(p)+len(segments))
	res = append(res, p...)
	return append(res, segments...)
}
