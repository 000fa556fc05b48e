// Package maps provides helpers for combining mappings.
//
// DeepMerge and DeepMergeAll work on map[string]any documents as produced by
// JSON, YAML or YSON decoders. UpdateMissing and WithDefaults are generic.
package maps
