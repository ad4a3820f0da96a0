// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package guard

import (
	"errors"
	"testing"
)

func text(s string) Side {
	return Side{Text: s, Size: int64(len(s))}
}

func TestEvaluateProceeds(t *testing.T) {
	d := Evaluate(text("hello\nworld\n"), text("hello\nthere\n"), DefaultLimits)
	if d.Suppressed {
		t.Errorf("plain text suppressed with reason %q", d.Reason)
	}
}

func TestEvaluateDisabledWinsOverEverything(t *testing.T) {
	limits := Limits{Disabled: true, FileSizeThreshold: 1}
	old := Side{Text: "x\x00y", Size: 100, DecodeErr: errors.New("bad byte")}

	d := Evaluate(old, old, limits)
	if !d.Suppressed || d.Reason != ReasonDisabled {
		t.Errorf("got %+v, want disabled reason", d)
	}
}

func TestEvaluateSizeThreshold(t *testing.T) {
	limits := Limits{FileSizeThreshold: 10}

	tests := []struct {
		name     string
		old, new int64
		want     bool
	}{
		{"both under", 5, 5, false},
		{"exactly at threshold", 10, 10, false},
		{"old one over", 11, 5, true},
		{"new one over", 5, 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(Side{Text: "a", Size: tt.old}, Side{Text: "b", Size: tt.new}, limits)
			if d.Suppressed != tt.want {
				t.Errorf("suppressed = %v, want %v", d.Suppressed, tt.want)
			}
			if tt.want && d.Reason != SizeReason(10) {
				t.Errorf("reason = %q, want %q", d.Reason, SizeReason(10))
			}
		})
	}
}

func TestEvaluateSizeBeforeBinary(t *testing.T) {
	limits := Limits{FileSizeThreshold: 10}
	old := Side{Text: "\x00", Size: 50}

	d := Evaluate(old, text("fine"), limits)
	if d.Reason != SizeReason(10) {
		t.Errorf("reason = %q, want size reason to win over binary", d.Reason)
	}
}

func TestEvaluateBinary(t *testing.T) {
	tests := []struct {
		name     string
		old, new Side
		want     string
	}{
		{"NUL in old", text("a\x00b"), text("ok"), ReasonOldBinary},
		{"NUL in new", text("ok"), text("a\x00b"), ReasonNewBinary},
		{"old wins when both binary", text("\x00"), text("\x01"), ReasonOldBinary},
		{"control byte", text("bell\x07"), text("ok"), ReasonOldBinary},
		{"decode failure", Side{DecodeErr: errors.New("oops")}, text("ok"), ReasonOldBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.old, tt.new, DefaultLimits)
			if !d.Suppressed || d.Reason != tt.want {
				t.Errorf("got %+v, want reason %q", d, tt.want)
			}
		})
	}
}

func TestEvaluateTextIsNotBinary(t *testing.T) {
	// Tabs, newlines, and non-ASCII printables are all text.
	d := Evaluate(text("col1\tcol2\r\nrésumé → done\n"), text("� stray byte\n"), DefaultLimits)
	if d.Suppressed {
		t.Errorf("printable content suppressed with reason %q", d.Reason)
	}
}

func TestSizeReason(t *testing.T) {
	want := "(file sizes exceed 10000000 bytes, diff output suppressed)"
	if got := SizeReason(10000000); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
