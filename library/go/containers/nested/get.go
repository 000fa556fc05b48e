package nested

import (
	"strconv"
	"strings"
)

// Get returns the value at path. The second result is false when a segment is
// missing, an index is out of range or an intermediate value is not a container.
func Get(root any, path Path) (any, bool) {
	cur := root
	for _, segment := range path {
		next, ok := child(cur, segment)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// SafeGet returns the value at path or def when there is none.
func SafeGet(root any, path Path, def any) any {
	if v, ok := Get(root, path); ok {
		return v
	}
	return def
}

// GetAs returns the value at path if it has type T, def otherwise.
func GetAs[T any](root any, path Path, def T) T {
	if v, ok := Get(root, path); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return def
}

// Has reports whether path exists in root.
func Has(root any, path Path) bool {
	_, ok := Get(root, path)
	return ok
}

func child(node any, segment string) (any, bool) {
	switch c := node.(type) {
	case map[string]any:
		v, ok := c[segment]
		return v, ok
	case []any:
		i, ok := index(segment, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	default:
		return nil, false
	}
}

// parseIndex parses a list index segment. A sign is allowed only for
// negative indexes, so every index has a single spelling.
func parseIndex(segment string) (int, error) {
	if strings.HasPrefix(segment, "+") {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(segment)
}

// index resolves segment to a position in a list of length n.
func index(segment string, n int) (int, bool) {
	i, err := parseIndex(segment)
	if err != nil {
		return 0, false
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
