package slices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vbrozik/vb.utils/library/go/containers/slices"
)

func TestFlatten(t *testing.T) {
	nested := func() []any {
		return []any{1, []any{2, []any{3, 4}}, 5}
	}

	tests := []struct {
		name  string
		depth int
		want  []any
	}{
		{"depth 0 copies", 0, []any{1, []any{2, []any{3, 4}}, 5}},
		{"depth 1", 1, []any{1, 2, []any{3, 4}, 5}},
		{"depth 2", 2, []any{1, 2, 3, 4, 5}},
		{"depth beyond nesting", 10, []any{1, 2, 3, 4, 5}},
		{"negative depth", -1, []any{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := nested()
			assert.Equal(t, tt.want, slices.Flatten(s, tt.depth))
			assert.Equal(t, nested(), s)
		})
	}
}

func TestFlattenAll(t *testing.T) {
	assert.Equal(t, []any{1, 2, 3, 4, 5}, slices.FlattenAll([]any{1, []any{2, []any{3, 4}}, 5}))
	assert.Equal(t, []any{}, slices.FlattenAll([]any{[]any{}, []any{[]any{}}}))
	assert.Nil(t, slices.FlattenAll(nil))
}

func TestFlattenKeepsTypedSlices(t *testing.T) {
	s := []any{[]int{1, 2}, "ab", map[string]any{"k": []any{1}}}
	assert.Equal(t, s, slices.FlattenAll(s))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Concat([]int{1, 2}, nil, []int{3}, []int{4, 5}))
	assert.Equal(t, []int{}, slices.Concat[[]int]())
}
