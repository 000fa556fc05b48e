package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vbrozik/vb.utils/internal/document"
	"github.com/vbrozik/vb.utils/internal/lines"
	"github.com/vbrozik/vb.utils/library/go/compress"
)

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Process lines of a file or stdin",
}

var linesDedupCmd = &cobra.Command{
	Use:   "dedup [FILE]",
	Short: "Drop repeated lines keeping the first occurrence",
	Args:  cobra.MaximumNArgs(1),
	Run:   wrapRun(doLinesDedup),
}

var linesChunkCmd = &cobra.Command{
	Use:   "chunk [FILE]",
	Short: "Join every N lines into one",
	Args:  cobra.MaximumNArgs(1),
	Run:   wrapRun(doLinesChunk),
}

var linesRangesCmd = &cobra.Command{
	Use:   "ranges [FILE]",
	Short: "Collapse integers into ranges like 1-3,7",
	Args:  cobra.MaximumNArgs(1),
	Run:   wrapRun(doLinesRanges),
}

var linesGroupCmd = &cobra.Command{
	Use:   "group [FILE]",
	Short: "Group lines by key before separator",
	Args:  cobra.MaximumNArgs(1),
	Run:   wrapRun(doLinesGroup),
}

var (
	flagChunkSize int
	flagSeparator string
)

func init() {
	linesChunkCmd.Flags().IntVarP(&flagChunkSize, "size", "n", 0, "lines per chunk, defaults to lines.chunk_size config")
	linesChunkCmd.Flags().StringVarP(&flagSeparator, "separator", "s", "", "separator of joined lines, defaults to lines.separator config")
	linesGroupCmd.Flags().StringVarP(&flagSeparator, "separator", "s", "", "key separator, defaults to lines.group_separator config")

	linesCmd.AddCommand(linesDedupCmd)
	linesCmd.AddCommand(linesChunkCmd)
	linesCmd.AddCommand(linesRangesCmd)
	linesCmd.AddCommand(linesGroupCmd)
	rootCmd.AddCommand(linesCmd)
}

func readLines(args []string) ([]string, error) {
	if len(args) == 0 || args[0] == document.Stdin {
		return lines.Read(os.Stdin)
	}

	r, err := compress.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return lines.Read(r)
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func doLinesDedup(w io.Writer, args []string) error {
	in, err := readLines(args)
	if err != nil {
		return err
	}
	return lines.Write(w, lines.Dedup(in))
}

func doLinesChunk(w io.Writer, args []string) error {
	in, err := readLines(args)
	if err != nil {
		return err
	}

	res, err := lines.Chunk(in, orDefault(flagChunkSize, cfg.Lines.ChunkSize), orDefault(flagSeparator, cfg.Lines.Separator))
	if err != nil {
		return err
	}
	return lines.Write(w, res)
}

func doLinesRanges(w io.Writer, args []string) error {
	in, err := readLines(args)
	if err != nil {
		return err
	}

	res, err := lines.Ranges(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res)
	return err
}

func doLinesGroup(w io.Writer, args []string) error {
	in, err := readLines(args)
	if err != nil {
		return err
	}

	groups, err := lines.Group(in, orDefault(flagSeparator, cfg.Lines.GroupSeparator))
	if err != nil {
		return err
	}

	for key, group := range groups.All() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, strings.Join(group, ", ")); err != nil {
			return err
		}
	}
	return nil
}
