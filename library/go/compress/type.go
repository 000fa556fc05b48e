package compress

import (
	"path/filepath"
	"strings"
)

// Type is a compression algorithm.
type Type int

const (
	TypeNone Type = iota
	TypeGzip
	TypeZstd
	TypeBrotli
	TypeLz4
	TypeSnappy
	TypeBzip2
	// TypeBlock is YT block framing, every block compressed with snappy.
	TypeBlock
)

var suffixes = map[string]Type{
	".gz":  TypeGzip,
	".zst": TypeZstd,
	".br":  TypeBrotli,
	".lz4": TypeLz4,
	".sz":  TypeSnappy,
	".bz2": TypeBzip2,
	".ybc": TypeBlock,
}

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeGzip:
		return "gzip"
	case TypeZstd:
		return "zstd"
	case TypeBrotli:
		return "brotli"
	case TypeLz4:
		return "lz4"
	case TypeSnappy:
		return "snappy"
	case TypeBzip2:
		return "bzip2"
	case TypeBlock:
		return "block"
	}
	return ""
}

// TypeFromPath returns compression type implied by the suffix of path.
func TypeFromPath(path string) Type {
	return suffixes[strings.ToLower(filepath.Ext(path))]
}

// TrimSuffix removes compression suffix from path, e.g. "conf.yaml.gz" becomes "conf.yaml".
func TrimSuffix(path string) string {
	if TypeFromPath(path) == TypeNone {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}
