// Package lines applies sequence helpers to line oriented text.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.ytsaurus.tech/library/go/core/xerrors"

	"github.com/vbrozik/vb.utils/library/go/containers/slices"
)

const maxLineSize = 16 * 1024 * 1024

// Read returns lines of r without line terminators.
func Read(r io.Reader) ([]string, error) {
	var lines []string

	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, xerrors.Errorf("unable to read lines: %w", err)
	}
	return lines, nil
}

// Write writes every line to w followed by newline.
func Write(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Dedup removes repeated lines keeping the first occurrence.
func Dedup(lines []string) []string {
	return slices.Dedup(lines)
}

// Chunk joins every size consecutive lines with sep.
func Chunk(lines []string, size int, sep string) ([]string, error) {
	chunks, err := slices.Chunk(lines, size)
	if err != nil {
		return nil, err
	}

	res := make([]string, 0, len(chunks))
	for _, c := range chunks {
		res = append(res, strings.Join(c, sep))
	}
	return res, nil
}

// Ranges parses integers, one per line, and describes their consecutive runs, e.g. "1-3,7".
// A run with a negative bound uses ".." instead, e.g. "-3..-1", so the output stays unambiguous.
// Blank lines are skipped.
func Ranges(lines []string) (string, error) {
	values := make([]int64, 0, len(lines))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}

		v, err := strconv.ParseInt(l, 10, 64)
		if err != nil {
			return "", xerrors.Errorf("line %d: %w", i+1, err)
		}
		values = append(values, v)
	}

	ranges := slices.Ranges(values)
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, formatRange(r))
	}
	return strings.Join(parts, ","), nil
}

func formatRange(r slices.Range[int64]) string {
	if r.First == r.Last || r.First >= 0 {
		return r.String()
	}
	return fmt.Sprintf("%d..%d", r.First, r.Last)
}

// Group groups lines by the part before the first occurrence of sep.
// Lines without sep form a group with the empty key.
func Group(lines []string, sep string) (*slices.Groups[string, string], error) {
	return slices.GroupBy(lines, func(l string) string {
		key, _, found := strings.Cut(l, sep)
		if !found {
			return ""
		}
		return key
	})
}
