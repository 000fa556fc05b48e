package compress

import (
	"compress/bzip2"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"go.ytsaurus.tech/library/go/blockcodecs"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// ErrUnsupported is returned for algorithms without a reader or writer.
var ErrUnsupported = xerrors.NewSentinel("unsupported compression type")

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func noopClose() error { return nil }

// NewReader returns a reader decompressing r with algorithm t.
// Closing the result does not close r.
func NewReader(r io.Reader, t Type) (io.ReadCloser, error) {
	switch t {
	case TypeNone:
		return io.NopCloser(r), nil
	case TypeGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, xerrors.Errorf("gzip: %w", err)
		}
		return zr, nil
	case TypeZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, xerrors.Errorf("zstd: %w", err)
		}
		return zr.IOReadCloser(), nil
	case TypeBrotli:
		return &readCloser{Reader: brotli.NewReader(r)}, nil
	case TypeLz4:
		return &readCloser{Reader: lz4.NewReader(r)}, nil
	case TypeSnappy:
		return &readCloser{Reader: snappy.NewReader(r)}, nil
	case TypeBzip2:
		return &readCloser{Reader: bzip2.NewReader(r)}, nil
	case TypeBlock:
		d := blockcodecs.NewDecoder(r)
		d.SetCheckUnderlyingEOF(true)
		return &readCloser{Reader: d}, nil
	}
	return nil, xerrors.Errorf("%v: %w", t, ErrUnsupported)
}

// Open opens file path for reading and decompresses it according to its suffix.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(f, TypeFromPath(path))
	if err != nil {
		_ = f.Close()
		return nil, xerrors.Errorf("unable to open %q: %w", path, err)
	}
	return &readCloser{Reader: r, closers: []func() error{r.Close, f.Close}}, nil
}
