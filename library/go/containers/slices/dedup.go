package slices

import (
	"reflect"

	"github.com/mitchellh/hashstructure"

	"github.com/vbrozik/vb.utils/library/go/containers"
)

// Dedup returns a copy of s holding the first occurrence of every distinct value.
// Relative order of kept values is preserved.
func Dedup[S ~[]E, E comparable](s S) S {
	if s == nil {
		return nil
	}

	seen := make(map[E]struct{}, len(s))
	res := make(S, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// DedupFunc is like Dedup, but compares values by the key returned from fn.
func DedupFunc[S ~[]E, E any, K comparable](s S, fn func(E) K) (S, error) {
	if fn == nil {
		return nil, containers.InvalidArgument("fn", "key function is nil")
	}
	if s == nil {
		return nil, nil
	}

	seen := make(map[K]struct{}, len(s))
	res := make(S, 0, len(s))
	for _, v := range s {
		k := fn(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	return res, nil
}

// DedupAny is like Dedup for values that are not comparable, e.g. maps or slices.
//
// Values are bucketed by structural hash and compared with reflect.DeepEqual,
// so int(1) and int64(1) are distinct.
func DedupAny[S ~[]E, E any](s S) (S, error) {
	if s == nil {
		return nil, nil
	}

	buckets := make(map[uint64][]E, len(s))
	res := make(S, 0, len(s))
	for i, v := range s {
		h, err := hashstructure.Hash(v, nil)
		if err != nil {
			return nil, containers.InvalidArgument("s", "element %d is not hashable: %v", i, err)
		}

		dup := false
		for _, kept := range buckets[h] {
			if reflect.DeepEqual(kept, v) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		buckets[h] = append(buckets[h], v)
		res = append(res, v)
	}
	return res, nil
}
