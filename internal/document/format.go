package document

import (
	"path/filepath"
	"strings"

	"github.com/vbrozik/vb.utils/library/go/compress"
	"github.com/vbrozik/vb.utils/library/go/containers"
)

type Format string

const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatYSON Format = "yson"
)

var extensions = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
	".yson": FormatYSON,
}

// ParseFormat parses format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatYAML, FormatJSON, FormatYSON:
		return f, nil
	default:
		return "", containers.InvalidArgument("format", "unknown format %q", s)
	}
}

// FormatFromPath detects format by file extension, ignoring compression suffix.
// YAML is assumed for unknown extensions, as JSON documents are valid YAML as well.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(compress.TrimSuffix(path)))
	if f, ok := extensions[ext]; ok {
		return f
	}
	return FormatYAML
}
