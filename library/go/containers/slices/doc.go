// Package slices provides generic helpers for ordered sequences.
//
// It covers deduplication that keeps first occurrences (Dedup, DedupFunc,
// DedupAny), flattening of nested []any values (Flatten, Concat), batching
// (Chunk), grouping in first-seen key order (GroupBy, GroupByKeys) and a few
// iterable helpers (FirstLast, Ranges, Zip).
//
// None of the functions modify their arguments.
package slices
