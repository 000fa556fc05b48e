package slices

import (
	"iter"
	"slices"

	"github.com/vbrozik/vb.utils/library/go/containers"
)

// Groups is a result of grouping. Keys are kept in the order they were first seen.
type Groups[K comparable, E any] struct {
	keys   []K
	groups map[K][]E
}

func newGroups[K comparable, E any](capacity int) *Groups[K, E] {
	return &Groups[K, E]{groups: make(map[K][]E, capacity)}
}

func (g *Groups[K, E]) add(k K, v E) {
	group, ok := g.groups[k]
	if !ok {
		g.keys = append(g.keys, k)
	}
	g.groups[k] = append(group, v)
}

// Len returns number of groups.
func (g *Groups[K, E]) Len() int {
	return len(g.keys)
}

// Keys returns group keys in first-seen order.
func (g *Groups[K, E]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns elements of group k or nil.
func (g *Groups[K, E]) Get(k K) []E {
	return slices.Clone(g.groups[k])
}

// Map returns groups as a plain map.
func (g *Groups[K, E]) Map() map[K][]E {
	res := make(map[K][]E, len(g.groups))
	for k, group := range g.groups {
		res[k] = slices.Clone(group)
	}
	return res
}

// All iterates over groups in first-seen key order.
func (g *Groups[K, E]) All() iter.Seq2[K, []E] {
	return func(yield func(K, []E) bool) {
		for _, k := range g.keys {
			if !yield(k, slices.Clone(g.groups[k])) {
				return
			}
		}
	}
}

// GroupBy groups values of s by the key returned from fn.
// Order of values inside a group follows s.
func GroupBy[S ~[]E, E any, K comparable](s S, fn func(E) K) (*Groups[K, E], error) {
	if fn == nil {
		return nil, containers.InvalidArgument("fn", "key function is nil")
	}

	res := newGroups[K, E](0)
	for _, v := range s {
		res.add(fn(v), v)
	}
	return res, nil
}

// GroupByUniqueKey maps every value of s to its key.
// Two values with the same key are an error.
func GroupByUniqueKey[S ~[]E, E any, K comparable](s S, fn func(E) K) (map[K]E, error) {
	if fn == nil {
		return nil, containers.InvalidArgument("fn", "key function is nil")
	}

	res := make(map[K]E, len(s))
	for _, v := range s {
		k := fn(v)
		if _, ok := res[k]; ok {
			return nil, containers.InvalidArgument("s", "duplicate key %v", k)
		}
		res[k] = v
	}
	return res, nil
}

// IndexedEntity is a value together with its position in the source slice.
type IndexedEntity[E any] struct {
	Value E
	Index int
}

// GroupByWithIndex is like GroupBy, but keeps the source position of every value.
func GroupByWithIndex[S ~[]E, E any, K comparable](s S, fn func(E) K) (*Groups[K, IndexedEntity[E]], error) {
	if fn == nil {
		return nil, containers.InvalidArgument("fn", "key function is nil")
	}

	res := newGroups[K, IndexedEntity[E]](0)
	for i, v := range s {
		res.add(fn(v), IndexedEntity[E]{Value: v, Index: i})
	}
	return res, nil
}

// GroupByKeys groups items by the key at the same position in keys.
// Items or keys without a pair are ignored.
func GroupByKeys[SE ~[]E, SK ~[]K, E any, K comparable](items SE, keys SK) *Groups[K, E] {
	res := newGroups[K, E](0)
	for k, v := range Zip(keys, items) {
		res.add(k, v)
	}
	return res
}
