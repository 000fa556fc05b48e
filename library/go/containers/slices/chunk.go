package slices

import (
	"slices"

	"github.com/vbrozik/vb.utils/library/go/containers"
)

// Chunk splits s into consecutive chunks of at most size elements.
// Only the last chunk may be shorter. Chunks do not share memory with s.
func Chunk[S ~[]E, E any](s S, size int) ([]S, error) {
	if size <= 0 {
		return nil, containers.InvalidArgument("size", "chunk size must be positive, got %d", size)
	}

	res := make([]S, 0, (len(s)+size-1)/size)
	for len(s) > size {
		res = append(res, slices.Clone(s[:size]))
		s = s[size:]
	}
	if len(s) > 0 {
		res = append(res, slices.Clone(s))
	}
	return res, nil
}
