package nested_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrozik/vb.utils/library/go/containers"
	"github.com/vbrozik/vb.utils/library/go/containers/nested"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
		check func(t *testing.T, res any)
	}{
		{
			name:  "replace",
			path:  "a.b",
			value: 2,
			check: func(t *testing.T, res any) {
				assert.Equal(t, 2, nested.SafeGet(res, nested.ParsePath("a.b"), nil))
			},
		},
		{
			name:  "create intermediate maps",
			path:  "x.y.z",
			value: true,
			check: func(t *testing.T, res any) {
				assert.Equal(t, map[string]any{"y": map[string]any{"z": true}}, nested.SafeGet(res, nested.Path{"x"}, nil))
			},
		},
		{
			name:  "list element",
			path:  "list.1.name",
			value: "uno",
			check: func(t *testing.T, res any) {
				assert.Equal(t, "uno", nested.SafeGet(res, nested.ParsePath("list.1.name"), nil))
			},
		},
		{
			name:  "append to list",
			path:  "list.3",
			value: "three",
			check: func(t *testing.T, res any) {
				assert.Len(t, nested.SafeGet(res, nested.Path{"list"}, nil), 4)
				assert.Equal(t, "three", nested.SafeGet(res, nested.ParsePath("list.-1"), nil))
			},
		},
		{
			name:  "nil value becomes map",
			path:  "null.key",
			value: 1,
			check: func(t *testing.T, res any) {
				assert.Equal(t, map[string]any{"key": 1}, nested.SafeGet(res, nested.Path{"null"}, nil))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDoc()
			res, err := nested.Set(doc, nested.ParsePath(tt.path), tt.value)
			require.NoError(t, err)
			tt.check(t, res)

			if diff := cmp.Diff(testDoc(), doc); diff != "" {
				t.Errorf("Set() modified its argument (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetNilRoot(t *testing.T) {
	res, err := nested.Set(nil, nested.Path{"a", "b"}, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, res)
}

func TestSetInvalid(t *testing.T) {
	tests := []struct {
		name string
		path nested.Path
	}{
		{"empty path", nested.Path{}},
		{"scalar intermediate", nested.Path{"scalar", "x"}},
		{"non-integer index", nested.Path{"list", "x"}},
		{"index past end", nested.Path{"list", "4"}},
		{"index with plus sign", nested.Path{"list", "+1"}},
		{"negative out of range", nested.Path{"list", "-4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := nested.Set(testDoc(), tt.path, 1)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, containers.ErrInvalidArgument), "%v", err)
		})
	}
}

func TestDelete(t *testing.T) {
	doc := testDoc()

	res, ok := nested.Delete(doc, nested.ParsePath("a.b"))
	require.True(t, ok)
	assert.Equal(t, map[string]any{}, nested.SafeGet(res, nested.Path{"a"}, nil))

	res, ok = nested.Delete(doc, nested.ParsePath("list.0"))
	require.True(t, ok)
	assert.Equal(t, []any{map[string]any{"name": "one"}, []any{"two"}}, nested.SafeGet(res, nested.Path{"list"}, nil))

	res, ok = nested.Delete(doc, nested.ParsePath("list.-1.0"))
	require.True(t, ok)
	assert.Equal(t, []any{}, nested.SafeGet(res, nested.ParsePath("list.2"), nil))

	res, ok = nested.Delete(doc, nested.ParsePath("a.missing"))
	assert.False(t, ok)
	assert.Equal(t, doc, res)

	_, ok = nested.Delete(doc, nested.Path{})
	assert.False(t, ok)

	if diff := cmp.Diff(testDoc(), doc); diff != "" {
		t.Errorf("Delete() modified its argument (-want +got):\n%s", diff)
	}
}
