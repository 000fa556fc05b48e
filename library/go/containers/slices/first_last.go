package slices

import "iter"

// FirstLast returns the first and the last value of s.
// A single value is both first and last; an empty s yields def twice.
func FirstLast[S ~[]E, E any](s S, def E) (first, last E) {
	if len(s) == 0 {
		return def, def
	}
	return s[0], s[len(s)-1]
}

// FirstLastSeq is FirstLast for a sequence. The sequence is consumed completely.
func FirstLastSeq[E any](seq iter.Seq[E], def E) (first, last E) {
	first, last = def, def
	started := false
	for v := range seq {
		if !started {
			first, started = v, true
		}
		last = v
	}
	return first, last
}
