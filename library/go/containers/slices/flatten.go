package slices

// Flatten expands []any elements of s inline, descending at most depth levels.
// A negative depth flattens completely. Other values, typed slices included,
// are copied as is.
func Flatten(s []any, depth int) []any {
	if s == nil {
		return nil
	}
	return appendFlat(make([]any, 0, len(s)), s, depth)
}

// FlattenAll is Flatten with unlimited depth.
func FlattenAll(s []any) []any {
	return Flatten(s, -1)
}

func appendFlat(dst, s []any, depth int) []any {
	for _, v := range s {
		if inner, ok := v.([]any); ok && depth != 0 {
			dst = appendFlat(dst, inner, depth-1)
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

// Concat joins typed slices into a new one.
func Concat[S ~[]E, E any](ss ...S) S {
	var n int
	for _, s := range ss {
		n += len(s)
	}

	res := make(S, 0, n)
	for _, s := range ss {
		res = append(res, s...)
	}
	return res
}
