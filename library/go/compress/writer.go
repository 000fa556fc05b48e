package compress

import (
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"go.ytsaurus.tech/library/go/blockcodecs"
	_ "go.ytsaurus.tech/library/go/blockcodecs/all"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

const blockCodec = "snappy"

type writeCloser struct {
	io.Writer
	closers []func() error
}

func (w *writeCloser) Close() error {
	var firstErr error
	for _, c := range w.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns a writer compressing into w with algorithm t.
// Close flushes compressed data but does not close w.
func NewWriter(w io.Writer, t Type) (io.WriteCloser, error) {
	switch t {
	case TypeNone:
		return nopWriteCloser{w}, nil
	case TypeGzip:
		return gzip.NewWriter(w), nil
	case TypeZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, xerrors.Errorf("zstd: %w", err)
		}
		return zw, nil
	case TypeBrotli:
		return brotli.NewWriter(w), nil
	case TypeLz4:
		return lz4.NewWriter(w), nil
	case TypeSnappy:
		return snappy.NewBufferedWriter(w), nil
	case TypeBlock:
		return blockcodecs.NewEncoder(w, blockcodecs.FindCodecByName(blockCodec)), nil
	}
	return nil, xerrors.Errorf("%v: %w", t, ErrUnsupported)
}

// Create creates file path and compresses data written to it according to its suffix.
func Create(path string) (io.WriteCloser, error) {
	t := TypeFromPath(path)
	if t == TypeBzip2 {
		return nil, xerrors.Errorf("unable to create %q: %v is read only: %w", path, t, ErrUnsupported)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w, err := NewWriter(f, t)
	if err != nil {
		_ = f.Close()
		return nil, xerrors.Errorf("unable to create %q: %w", path, err)
	}
	return &writeCloser{Writer: w, closers: []func() error{w.Close, f.Close}}, nil
}
