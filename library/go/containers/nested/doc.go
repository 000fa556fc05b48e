// Package nested reads and updates values inside nested documents.
//
// A document is a tree of map[string]any and []any values with scalar
// leaves, the shape produced by decoding JSON, YAML or YSON into an any.
// Values are addressed by a Path: map keys select map entries and decimal
// indexes select list elements, negative indexes counting from the end.
//
//	doc := map[string]any{"user": map[string]any{"emails": []any{"a@x", "b@x"}}}
//	nested.SafeGet(doc, nested.ParsePath("user.emails.-1"), "")  // "b@x"
//	nested.SafeGet(doc, nested.ParsePath("user.phone"), "none")  // "none"
//
// Lookups never fail. Updates (Set, Delete) return a new document and copy
// only the containers along the path; the argument is never modified.
package nested
