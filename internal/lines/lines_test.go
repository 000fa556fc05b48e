package lines_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrozik/vb.utils/internal/lines"
	"github.com/vbrozik/vb.utils/library/go/containers"
)

func TestReadWrite(t *testing.T) {
	in, err := lines.Read(strings.NewReader("a\r\nb\n\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, in)

	var buf bytes.Buffer
	require.NoError(t, lines.Write(&buf, in))
	assert.Equal(t, "a\nb\n\nc\n", buf.String())

	empty, err := lines.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, lines.Dedup([]string{"b", "a", "b", "c", "a"}))
}

func TestChunk(t *testing.T) {
	res, err := lines.Chunk([]string{"1", "2", "3", "4", "5"}, 2, " ")
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2", "3 4", "5"}, res)

	_, err = lines.Chunk([]string{"1"}, 0, " ")
	assert.ErrorIs(t, err, containers.ErrInvalidArgument)
}

func TestRanges(t *testing.T) {
	res, err := lines.Ranges([]string{"1", "2", "3", "", " 7 ", "9", "10"})
	require.NoError(t, err)
	assert.Equal(t, "1-3,7,9-10", res)

	res, err = lines.Ranges([]string{"-3", "-2", "-1", "0", "1", "5", "-7"})
	require.NoError(t, err)
	assert.Equal(t, "-3..1,5,-7", res)

	res, err = lines.Ranges(nil)
	require.NoError(t, err)
	assert.Equal(t, "", res)

	_, err = lines.Ranges([]string{"1", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestGroup(t *testing.T) {
	g, err := lines.Group([]string{"a=1", "b=2", "plain", "a=3"}, "=")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", ""}, g.Keys())
	assert.Equal(t, []string{"a=1", "a=3"}, g.Get("a"))
	assert.Equal(t, []string{"plain"}, g.Get(""))
}
