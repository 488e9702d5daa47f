package debug

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// TreeWriter accumulates indented human readable dump. Tab separated columns
// of consecutive lines are aligned.
type TreeWriter struct {
	buf *strings.Builder
	tw  *tabwriter.Writer
}

func NewTreeWriter() *TreeWriter {
	buf := &strings.Builder{}
	return &TreeWriter{
		buf: buf,
		tw:  tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0),
	}
}

// String flushes pending lines and returns everything written so far.
func (t *TreeWriter) String() string {
	_ = t.tw.Flush()
	return t.buf.String()
}

func (t *TreeWriter) indent(depth int) {
	for range depth {
		_, _ = t.tw.Write([]byte("  "))
	}
}

func (t *TreeWriter) Line(depth int, format string, args ...any) {
	t.indent(depth)
	fmt.Fprintf(t.tw, format, args...)
	_, _ = t.tw.Write([]byte{'\n'})
}

// Text writes labeled value, non empty values are quoted.
func (t *TreeWriter) Text(depth int, label, value string) {
	t.indent(depth)
	fmt.Fprintf(t.tw, "%s:\t%s\n", label, encodeText(value))
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
