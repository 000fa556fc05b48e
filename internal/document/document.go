// Package document reads and writes nested documents in YAML, JSON and YSON.
package document

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"go.ytsaurus.tech/library/go/core/xerrors"
	"go.ytsaurus.tech/yt/go/yson"

	"github.com/vbrozik/vb.utils/library/go/compress"
	"github.com/vbrozik/vb.utils/library/go/containers"
	"github.com/vbrozik/vb.utils/library/go/containers/nested"
)

// Stdin is the path denoting standard input.
const Stdin = "-"

// Decode parses data in format f.
//
// Maps are returned as map[string]any, lists as []any. YSON attributes are dropped.
func Decode(data []byte, f Format) (any, error) {
	var doc any
	switch f {
	case FormatYAML, FormatAuto:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		d := json.NewDecoder(bytes.NewReader(data))
		d.UseNumber()
		if err := d.Decode(&doc); err != nil {
			return nil, err
		}
		return nested.Normalize(fromJSON(doc)), nil
	case FormatYSON:
		if err := yson.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		doc = dropAttrs(doc)
	default:
		return nil, xerrors.Errorf("unknown format %q", f)
	}
	return nested.Normalize(doc), nil
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc any, f Format) error {
	switch f {
	case FormatYAML, FormatAuto:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(doc); err != nil {
			return err
		}
		return e.Close()
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(doc)
	case FormatYSON:
		data, err := yson.MarshalFormat(doc, yson.FormatPretty)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	default:
		return xerrors.Errorf("unknown format %q", f)
	}
}

// Load reads document from possibly compressed file.
// FormatAuto selects format by file extension.
func Load(path string, f Format) (any, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	if f == FormatAuto {
		f = FormatFromPath(path)
	}

	doc, err := Decode(data, f)
	if err != nil {
		return nil, xerrors.Errorf("unable to parse %q as %s: %w", path, f, err)
	}
	return doc, nil
}

// LoadAll loads documents concurrently, preserving order of paths.
// Stdin may be given at most once.
func LoadAll(ctx context.Context, paths []string, f Format) ([]any, error) {
	stdin := 0
	for _, path := range paths {
		if path == Stdin {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, containers.InvalidArgument("paths", "%q is given %d times", Stdin, stdin)
	}

	docs := make([]any, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := Load(path, f)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// ReadFile reads whole possibly compressed file. Stdin is read for path "-".
func ReadFile(path string) ([]byte, error) {
	if path == Stdin {
		return io.ReadAll(os.Stdin)
	}

	r, err := compress.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("unable to read %q: %w", path, err)
	}
	return data, nil
}

func dropAttrs(v any) any {
	switch c := yson.ValueOf(v).(type) {
	case map[string]any:
		for k, v := range c {
			c[k] = dropAttrs(v)
		}
		return c
	case []any:
		for i, v := range c {
			c[i] = dropAttrs(v)
		}
		return c
	default:
		return c
	}
}

// fromJSON converts json.Number to int64 where possible.
func fromJSON(v any) any {
	switch c := v.(type) {
	case json.Number:
		if i, err := c.Int64(); err == nil {
			return i
		}
		f, _ := c.Float64()
		return f
	case map[string]any:
		for k, v := range c {
			c[k] = fromJSON(v)
		}
		return c
	case []any:
		for i, v := range c {
			c[i] = fromJSON(v)
		}
		return c
	default:
		return c
	}
}
