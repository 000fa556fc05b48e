package nested

import (
	"fmt"
	"strconv"
)

// Dot flattens root into a map from dotted paths to leaf values.
// Empty containers are kept as leaves; a scalar root is stored under "".
func Dot(root any) map[string]any {
	res := make(map[string]any)
	dot(res, Path{}, root)
	return res
}

func dot(dst map[string]any, prefix Path, node any) {
	switch c := node.(type) {
	case map[string]any:
		if len(c) == 0 {
			break
		}
		for k, v := range c {
			dot(dst, prefix.Child(k), v)
		}
		return
	case []any:
		if len(c) == 0 {
			break
		}
		for i, v := range c {
			dot(dst, prefix.Child(strconv.Itoa(i)), v)
		}
		return
	}
	dst[prefix.String()] = node
}

// Normalize converts a decoded document into the canonical shape of
// map[string]any and []any. Maps with non-string keys, as decoded by YAML,
// get their keys formatted with fmt.Sprint. The result shares no containers
// with v.
func Normalize(v any) any {
	switch c := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(c))
		for k, v := range c {
			res[k] = Normalize(v)
		}
		return res
	case map[any]any:
		res := make(map[string]any, len(c))
		for k, v := range c {
			res[fmt.Sprint(k)] = Normalize(v)
		}
		return res
	case []any:
		res := make([]any, len(c))
		for i, v := range c {
			res[i] = Normalize(v)
		}
		return res
	default:
		return v
	}
}
