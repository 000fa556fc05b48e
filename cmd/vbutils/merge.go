package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/xerrors"

	"github.com/vbrozik/vb.utils/internal/document"
	"github.com/vbrozik/vb.utils/library/go/containers/maps"
)

var mergeCmd = &cobra.Command{
	Use:   "merge FILE...",
	Short: "Deep merge documents, later files take precedence",
	Args:  cobra.MinimumNArgs(1),
	Run:   wrapRun(doMerge),
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func doMerge(w io.Writer, args []string) error {
	in, err := inputFormat()
	if err != nil {
		return err
	}
	out, err := outputFormat()
	if err != nil {
		return err
	}

	docs, err := document.LoadAll(context.Background(), args, in)
	if err != nil {
		return err
	}

	trees := make([]map[string]any, 0, len(docs))
	for i, doc := range docs {
		if doc == nil {
			continue
		}
		tree, ok := doc.(map[string]any)
		if !ok {
			return xerrors.Errorf("%q: top level value must be a mapping, got %T", args[i], doc)
		}
		trees = append(trees, tree)
	}

	merged, err := maps.DeepMergeAll(trees...)
	if err != nil {
		return err
	}

	logger.Debug("Documents merged", log.Strings("files", args), log.Int("keys", len(merged)))
	return document.Encode(w, merged, out)
}
