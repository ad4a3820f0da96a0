// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package textdiff

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// StampLayout renders file header timestamps as local time with nanosecond
// precision and a numeric UTC offset.
const StampLayout = "2006-01-02 15:04:05.000000000 -0700"

// FileInfo labels one side of the comparison for the unified-diff header.
type FileInfo struct {
	Label   string
	ModTime time.Time
}

// WriteUnified renders the "---"/"+++" file headers followed by each hunk:
// a standard "@@ -a,b +c,d @@" range line and the hunk body, every line
// newline-terminated so the stream is consumable by conventional
// unified-diff readers. Zero hunks emit nothing at all.
func WriteUnified(w io.Writer, old, new FileInfo, hunks []*Hunk) error {
	if len(hunks) == 0 {
		return nil
	}

	ew := &errWriter{w: w}
	ew.printf("--- %s\t%s\n", old.Label, old.ModTime.Format(StampLayout))
	ew.printf("+++ %s\t%s\n", new.Label, new.ModTime.Format(StampLayout))
	for _, h := range hunks {
		ew.printf("@@ -%s +%s @@\n", formatRange(h.OldStart, h.OldEnd), formatRange(h.NewStart, h.NewEnd))
		for _, line := range h.Lines {
			ew.printf("%s\n", line)
		}
	}

	return ew.err
}

// Unified wraps WriteUnified to return the rendered text as a string.
func Unified(old, new FileInfo, hunks []*Hunk) string {
	var sb strings.Builder
	_ = WriteUnified(&sb, old, new, hunks)
	return sb.String()
}

// formatRange renders a 0-based [start,stop) range as the 1-based
// "start,count" of a hunk header, with the GNU shorthands: a bare line
// number when the count is 1, and the line just before the range when the
// count is 0.
func formatRange(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

// errWriter folds write errors so the render loop stays flat.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}
