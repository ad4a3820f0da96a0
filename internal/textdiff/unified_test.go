// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package textdiff

import (
	"strings"
	"testing"
	"time"
)

var (
	testOldInfo = FileInfo{
		Label:   "old.txt",
		ModTime: time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.FixedZone("", -5*3600)),
	}
	testNewInfo = FileInfo{
		Label:   "new.txt",
		ModTime: time.Date(2026, 3, 14, 10, 0, 0, 1, time.FixedZone("", -5*3600)),
	}
)

func TestUnifiedReplace(t *testing.T) {
	old := Sequence{"a", "b", "c"}
	new := Sequence{"a", "x", "c"}

	hunks := Hunks(old, new, NewAligner().Align(old, new), 3)
	got := Unified(testOldInfo, testNewInfo, hunks)

	want := "--- old.txt\t2026-03-14 09:26:53.589793238 -0500\n" +
		"+++ new.txt\t2026-03-14 10:00:00.000000001 -0500\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		"+x\n" +
		" c\n"
	if got != want {
		t.Errorf("unified output:\n%q\nwant:\n%q", got, want)
	}
}

func TestUnifiedCreation(t *testing.T) {
	old := Sequence(nil)
	new := Sequence{"line1"}

	hunks := Hunks(old, new, NewAligner().Align(old, new), 3)
	got := Unified(testOldInfo, testNewInfo, hunks)

	if !strings.Contains(got, "@@ -0,0 +1 @@\n+line1\n") {
		t.Errorf("creation diff missing empty-range header or addition:\n%q", got)
	}
}

func TestUnifiedNoHunks(t *testing.T) {
	if got := Unified(testOldInfo, testNewInfo, nil); got != "" {
		t.Errorf("zero hunks rendered %q, want empty", got)
	}
}

func TestUnifiedIdempotent(t *testing.T) {
	old := numbered(30)
	new := edit(old, 4, 20)
	hunks := Hunks(old, new, NewAligner().Align(old, new), 3)

	first := Unified(testOldInfo, testNewInfo, hunks)
	second := Unified(testOldInfo, testNewInfo, hunks)

	if first != second {
		t.Error("formatting the same hunks twice differed")
	}
}

func TestUnifiedStreamShape(t *testing.T) {
	old := numbered(60)
	new := edit(old, 2, 52)
	hunks := Hunks(old, new, NewAligner().Align(old, new), 3)

	got := Unified(testOldInfo, testNewInfo, hunks)

	if !strings.HasSuffix(got, "\n") {
		t.Error("rendered diff does not end with a newline")
	}
	if strings.Contains(got, "\n\n") {
		t.Error("rendered diff contains a blank line, which breaks unified-diff consumers")
	}
	if got := strings.Count(got, "@@ -"); got != 2 {
		t.Errorf("found %d hunk headers, want 2", got)
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		start, stop int
		want        string
	}{
		{0, 3, "1,3"},
		{4, 5, "5"},
		{7, 7, "7,0"},
		{0, 0, "0,0"},
		{0, 1, "1"},
	}

	for _, tt := range tests {
		if got := formatRange(tt.start, tt.stop); got != tt.want {
			t.Errorf("formatRange(%d, %d) = %q, want %q", tt.start, tt.stop, got, tt.want)
		}
	}
}

func TestNewSequence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Sequence
	}{
		{"empty", "", nil},
		{"single line", "a\n", Sequence{"a"}},
		{"no trailing newline", "a\nb", Sequence{"a", "b"}},
		{"crlf", "a\r\nb\r\n", Sequence{"a", "b"}},
		{"blank interior line", "a\n\nb\n", Sequence{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSequence(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
