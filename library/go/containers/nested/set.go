package nested

import (
	"maps"
	"slices"

	"github.com/vbrozik/vb.utils/library/go/containers"
)

// Set returns a copy of root with value stored at path.
//
// Missing map entries along the path are created as map[string]any, as is a
// nil root. A list index equal to the list length appends. Only containers on
// the path are copied; root itself is left untouched.
func Set(root any, path Path, value any) (any, error) {
	if len(path) == 0 {
		return nil, containers.InvalidArgument("path", "path is empty")
	}
	return set(root, path, 0, value)
}

func set(node any, path Path, depth int, value any) (any, error) {
	segment := path[depth]
	last := depth == len(path)-1

	switch c := node.(type) {
	case nil:
		return set(map[string]any{}, path, depth, value)

	case map[string]any:
		res := make(map[string]any, len(c)+1)
		maps.Copy(res, c)
		if last {
			res[segment] = value
			return res, nil
		}
		v, err := set(c[segment], path, depth+1, value)
		if err != nil {
			return nil, err
		}
		res[segment] = v
		return res, nil

	case []any:
		i, err := parseIndex(segment)
		if err != nil {
			return nil, containers.InvalidArgument("path", "%q: list index %q is not an integer", path[:depth+1].String(), segment)
		}
		if i < 0 {
			i += len(c)
		}
		if i < 0 || i > len(c) {
			return nil, containers.InvalidArgument("path", "%q: list index %s is out of range [0, %d]", path[:depth+1].String(), segment, len(c))
		}

		res := slices.Clone(c)
		if i == len(c) {
			res = append(res, nil)
		}
		if last {
			res[i] = value
			return res, nil
		}
		v, err := set(res[i], path, depth+1, value)
		if err != nil {
			return nil, err
		}
		res[i] = v
		return res, nil

	default:
		return nil, containers.InvalidArgument("path", "%q: value of type %T is not a container", path[:depth].String(), node)
	}
}

// Delete returns a copy of root without the value at path.
// When there is nothing to delete, root is returned unchanged with false.
// A list element is removed by shifting the following elements.
func Delete(root any, path Path) (any, bool) {
	if len(path) == 0 || !Has(root, path) {
		return root, false
	}
	return del(root, path), true
}

// del expects path to exist in node.
func del(node any, path Path) any {
	segment, last := path[0], len(path) == 1

	switch c := node.(type) {
	case map[string]any:
		res := make(map[string]any, len(c))
		maps.Copy(res, c)
		if last {
			delete(res, segment)
		} else {
			res[segment] = del(c[segment], path[1:])
		}
		return res

	case []any:
		i, _ := index(segment, len(c))
		if last {
			return slices.Delete(slices.Clone(c), i, i+1)
		}
		res := slices.Clone(c)
		res[i] = del(c[i], path[1:])
		return res
	}
	return node
}
