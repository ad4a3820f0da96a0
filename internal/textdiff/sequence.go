// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package textdiff

import "strings"

// Sequence is an ordered list of text lines with terminators stripped.
// Sequences are compared positionally with exact string equality and are
// never mutated once built.
type Sequence []string

// NewSequence splits content into a Sequence. Both LF and CRLF terminators
// are stripped; a trailing terminator on the last line does not produce an
// empty final element. Empty content yields an empty Sequence.
func NewSequence(content string) Sequence {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return Sequence(lines)
}
