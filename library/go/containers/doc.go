// Package containers is the root of the container toolkit: stateless helpers
// over slices (package slices), maps (package maps) and nested map/slice
// documents (package nested).
//
// Every helper validates its arguments before doing any work and reports a
// violated precondition with an error matching ErrInvalidArgument. Lookups
// never fail: absence is reported by a default value or a boolean.
package containers
