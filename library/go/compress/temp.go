package compress

import (
	"io"
	"os"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// TempOptions controls DecompressToTemp.
type TempOptions struct {
	// Dir and Pattern are passed to os.CreateTemp.
	Dir     string
	Pattern string
	// PassUnknown makes DecompressToTemp return uncompressed files as is.
	PassUnknown bool
}

// DecompressToTemp decompresses path into a temporary file and returns its
// name together with a function removing it.
//
// For a path without a known compression suffix the original path and a
// no-op cleanup are returned if opts.PassUnknown is set, ErrUnsupported otherwise.
func DecompressToTemp(path string, opts TempOptions) (string, func() error, error) {
	t := TypeFromPath(path)
	if t == TypeNone {
		if opts.PassUnknown {
			return path, noopClose, nil
		}
		return "", nil, xerrors.Errorf("unable to decompress %q: %w", path, ErrUnsupported)
	}

	r, err := Open(path)
	if err != nil {
		return "", nil, err
	}
	defer func() { _ = r.Close() }()

	tmp, err := os.CreateTemp(opts.Dir, opts.Pattern)
	if err != nil {
		return "", nil, err
	}
	cleanup := func() error {
		return os.Remove(tmp.Name())
	}

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = cleanup()
		return "", nil, xerrors.Errorf("unable to decompress %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = cleanup()
		return "", nil, err
	}
	return tmp.Name(), cleanup, nil
}
