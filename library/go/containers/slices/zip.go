package slices

import "iter"

// Zip pairs a[i] with b[i]. The shorter slice limits the sequence.
func Zip[S1 ~[]T, S2 ~[]M, T, M any](a S1, b S2) iter.Seq2[T, M] {
	return func(yield func(T, M) bool) {
		n := min(len(a), len(b))
		for i := range n {
			if !yield(a[i], b[i]) {
				return
			}
		}
	}
}
