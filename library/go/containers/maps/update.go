package maps

import (
	"cmp"
	"maps"
	"slices"
)

// UpdateMissing copies into dst every entry of src whose key is missing in dst.
// It modifies dst.
func UpdateMissing[M1 ~map[K]V, M2 ~map[K]V, K comparable, V any](dst M1, src M2) {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}

// WithDefaults returns a copy of m completed with entries of defaults for missing keys.
func WithDefaults[M ~map[K]V, K comparable, V any](m, defaults M) M {
	res := make(M, max(len(m), len(defaults)))
	maps.Copy(res, m)
	UpdateMissing(res, defaults)
	return res
}

// SortedKeys returns keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}
