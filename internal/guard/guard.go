// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"
	"unicode"
)

// Limits is the threshold policy consumed by Evaluate. It is passed
// explicitly rather than read from ambient configuration so the policy
// stays a pure function of its inputs.
type Limits struct {
	Disabled          bool
	FileSizeThreshold int64 // bytes; inputs strictly larger are suppressed
	OutputThreshold   int   // characters of rendered diff text
}

// DefaultLimits are the stock thresholds applied when configuration
// provides none.
var DefaultLimits = Limits{
	FileSizeThreshold: 10000000,
	OutputThreshold:   1000000,
}

// Operator-facing suppression reasons.
const (
	ReasonDisabled  = "(diff output suppressed by config)"
	ReasonOldBinary = "(current file is binary, diff output suppressed)"
	ReasonNewBinary = "(new content is binary, diff output suppressed)"
)

// SizeReason is the suppression reason for inputs over the byte-size
// threshold.
func SizeReason(threshold int64) string {
	return fmt.Sprintf("(file sizes exceed %d bytes, diff output suppressed)", threshold)
}

// Side is one side of the comparison as seen by the guard: the decoded
// text, the byte size on disk, and any decode failure.
type Side struct {
	Text      string
	Size      int64
	DecodeErr error
}

// Decision is the guard's outcome: proceed, or suppress with a reason.
type Decision struct {
	Suppressed bool
	Reason     string
}

func suppress(reason string) Decision {
	return Decision{Suppressed: true, Reason: reason}
}

// Evaluate applies the suppression policy, cheapest check first: the
// global disable flag, then the byte-size threshold, then the binary
// classification of the old and new content, old first. An input of
// exactly the threshold size proceeds; one byte over is suppressed. The
// output-length threshold is not applied here since it depends on the
// rendered text; that cutoff belongs to the controller.
func Evaluate(old, new Side, limits Limits) Decision {
	if limits.Disabled {
		return suppress(ReasonDisabled)
	}
	if limits.FileSizeThreshold > 0 &&
		(old.Size > limits.FileSizeThreshold || new.Size > limits.FileSizeThreshold) {
		return suppress(SizeReason(limits.FileSizeThreshold))
	}
	if isBinary(old) {
		return suppress(ReasonOldBinary)
	}
	if isBinary(new) {
		return suppress(ReasonNewBinary)
	}
	return Decision{}
}

// isBinary reports whether a side's content is not plain text: it failed
// to decode in the configured encoding, or it contains a rune that is
// neither printable nor whitespace (NUL and other control bytes).
func isBinary(s Side) bool {
	if s.DecodeErr != nil {
		return true
	}
	for _, r := range s.Text {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
