package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.ytsaurus.tech/library/go/core/xerrors"

	"github.com/vbrozik/vb.utils/internal/document"
	"github.com/vbrozik/vb.utils/library/go/containers/maps"
	"github.com/vbrozik/vb.utils/library/go/containers/nested"
)

var getCmd = &cobra.Command{
	Use:   "get FILE PATH",
	Short: "Print value at dotted path",
	Args:  cobra.ExactArgs(2),
	Run:   wrapRun(doGet),
}

var setCmd = &cobra.Command{
	Use:   "set FILE PATH VALUE",
	Short: "Print document with value at dotted path replaced, VALUE is parsed as YAML",
	Args:  cobra.ExactArgs(3),
	Run:   wrapRun(doSet),
}

var deleteCmd = &cobra.Command{
	Use:   "delete FILE PATH",
	Short: "Print document without value at dotted path",
	Args:  cobra.ExactArgs(2),
	Run:   wrapRun(doDelete),
}

var dotCmd = &cobra.Command{
	Use:   "dot FILE",
	Short: "Print leaves of document as PATH=VALUE lines",
	Args:  cobra.ExactArgs(1),
	Run:   wrapRun(doDot),
}

var flagDefault string

func init() {
	getCmd.Flags().StringVar(&flagDefault, "default", "", "value printed when path is missing, parsed as YAML")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dotCmd)
}

func loadDocument(path string) (any, document.Format, error) {
	in, err := inputFormat()
	if err != nil {
		return nil, "", err
	}
	out, err := outputFormat()
	if err != nil {
		return nil, "", err
	}

	doc, err := document.Load(path, in)
	if err != nil {
		return nil, "", err
	}
	return doc, out, nil
}

func parseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, xerrors.Errorf("invalid value %q: %w", s, err)
	}
	return nested.Normalize(v), nil
}

func doGet(w io.Writer, args []string) error {
	doc, out, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	v, ok := nested.Get(doc, nested.ParsePath(args[1]))
	if !ok {
		if flagDefault == "" {
			return xerrors.Errorf("path %q not found in %q", args[1], args[0])
		}
		if v, err = parseValue(flagDefault); err != nil {
			return err
		}
	}
	return document.Encode(w, v, out)
}

func doSet(w io.Writer, args []string) error {
	doc, out, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	v, err := parseValue(args[2])
	if err != nil {
		return err
	}

	doc, err = nested.Set(doc, nested.ParsePath(args[1]), v)
	if err != nil {
		return err
	}
	return document.Encode(w, doc, out)
}

func doDelete(w io.Writer, args []string) error {
	doc, out, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	doc, ok := nested.Delete(doc, nested.ParsePath(args[1]))
	if !ok {
		return xerrors.Errorf("path %q not found in %q", args[1], args[0])
	}
	return document.Encode(w, doc, out)
}

func doDot(w io.Writer, args []string) error {
	doc, _, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	flat := nested.Dot(doc)
	for _, k := range maps.SortedKeys(flat) {
		if _, err := fmt.Fprintf(w, "%s=%v\n", k, flat[k]); err != nil {
			return err
		}
	}
	return nil
}
