package slices

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is an inclusive interval of integers.
type Range[E constraints.Integer] struct {
	First E
	Last  E
}

// String renders "First-Last", or a single number for a one element range.
// Ranges with negative bounds render ambiguously, e.g. "-3--1".
func (r Range[E]) String() string {
	if r.First == r.Last {
		return fmt.Sprint(r.First)
	}
	return fmt.Sprintf("%v-%v", r.First, r.Last)
}

// Ranges collapses runs of consecutive increasing integers into ranges.
//
// Input is normally sorted and unique, otherwise the result is not minimal:
// Ranges([]int{3, 4, 1, 2}) is [3-4 1-2].
func Ranges[S ~[]E, E constraints.Integer](s S) []Range[E] {
	res := make([]Range[E], 0)
	for _, v := range s {
		if n := len(res); n > 0 && res[n-1].Last < v && v-res[n-1].Last == 1 {
			res[n-1].Last = v
			continue
		}
		res = append(res, Range[E]{First: v, Last: v})
	}
	return res
}
