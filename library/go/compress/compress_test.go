package compress_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vbrozik/vb.utils/library/go/compress"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var payload = bytes.Repeat([]byte("key: value\nlist: [1, 2, 3]\n"), 100)

// bzip2 compressed "hello, bzip2\n".
var bzip2Hello = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xb1, 0x23, 0xde, 0x43, 0x00, 0x00,
	0x03, 0x59, 0x80, 0x00, 0x10, 0x40, 0x04, 0x10, 0x00, 0x12, 0x64, 0xc0, 0x10, 0x20, 0x00, 0x31,
	0x03, 0x40, 0xd0, 0x20, 0x01, 0xa6, 0x91, 0x03, 0xab, 0x6c, 0x82, 0x84, 0xf8, 0xbb, 0x92, 0x29,
	0xc2, 0x84, 0x85, 0x89, 0x1e, 0xf2, 0x18,
}

func TestTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want compress.Type
	}{
		{"a.yaml", compress.TypeNone},
		{"a", compress.TypeNone},
		{"a.yaml.gz", compress.TypeGzip},
		{"A.YAML.GZ", compress.TypeGzip},
		{"dir.gz/a.zst", compress.TypeZstd},
		{"a.br", compress.TypeBrotli},
		{"a.lz4", compress.TypeLz4},
		{"a.sz", compress.TypeSnappy},
		{"a.bz2", compress.TypeBzip2},
		{"a.ybc", compress.TypeBlock},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, compress.TypeFromPath(tt.path))
		})
	}
}

func TestTrimSuffix(t *testing.T) {
	assert.Equal(t, "conf.yaml", compress.TrimSuffix("conf.yaml.gz"))
	assert.Equal(t, "conf.yaml", compress.TrimSuffix("conf.yaml"))
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	w, err := compress.Create(path)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	r, err := compress.Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return data
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.yaml", "a.gz", "a.zst", "a.br", "a.lz4", "a.sz", "a.ybc"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			writeFile(t, path, payload)
			assert.Equal(t, payload, readFile(t, path))

			if compress.TypeFromPath(name) != compress.TypeNone {
				raw, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.NotEqual(t, payload, raw)
			}
		})
	}
}

func TestReadBzip2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.bz2")
	require.NoError(t, os.WriteFile(path, bzip2Hello, 0o644))
	assert.Equal(t, []byte("hello, bzip2\n"), readFile(t, path))
}

func TestCreateBzip2Unsupported(t *testing.T) {
	_, err := compress.Create(filepath.Join(t.TempDir(), "a.bz2"))
	assert.True(t, errors.Is(err, compress.ErrUnsupported))
}

func TestOpenCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))

	_, err := compress.Open(path)
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := compress.Open(filepath.Join(t.TempDir(), "missing.gz"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecompressToTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml.zst")
	writeFile(t, path, payload)

	tmp, cleanup, err := compress.DecompressToTemp(path, compress.TempOptions{Dir: dir, Pattern: "data-*.yaml"})
	require.NoError(t, err)
	assert.NotEqual(t, path, tmp)

	data, err := os.ReadFile(tmp)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	require.NoError(t, cleanup())
	_, err = os.Stat(tmp)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecompressToTempUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	tmp, cleanup, err := compress.DecompressToTemp(path, compress.TempOptions{PassUnknown: true})
	require.NoError(t, err)
	assert.Equal(t, path, tmp)
	require.NoError(t, cleanup())
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, _, err = compress.DecompressToTemp(path, compress.TempOptions{})
	assert.True(t, errors.Is(err, compress.ErrUnsupported))
}
