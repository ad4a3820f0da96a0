// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package textdiff

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 3

// Hunk is one contiguous window of change plus surrounding context. It
// covers old[OldStart:OldEnd] and new[NewStart:NewEnd] (0-based, half-open,
// context included) and holds the rendered body lines: context prefixed
// with a space, deletions with '-', additions with '+'.
type Hunk struct {
	OldStart, OldEnd int
	NewStart, NewEnd int
	Lines            []string

	// LengthDiff is the cumulative new-minus-old line count through this
	// hunk. The builder threads it from hunk to hunk so new-side line
	// numbers stay correct as insertions and deletions accumulate.
	LengthDiff int

	leading  int
	trailing int
}

// Builder turns change groups into context hunks and merges hunks whose
// context windows touch or overlap. One Builder covers one old/new pair.
type Builder struct {
	old     Sequence
	new     Sequence
	context int
	offset  int
}

// NewBuilder returns a Builder with the given context size. A negative
// context falls back to DefaultContext.
func NewBuilder(old, new Sequence, context int) *Builder {
	if context < 0 {
		context = DefaultContext
	}
	return &Builder{old: old, new: new, context: context}
}

// Build renders one context hunk for a non-Match group: the group's change
// lines padded with up to context unchanged lines on each side, clipped to
// the sequence bounds.
func (b *Builder) Build(g ChangeGroup) *Hunk {
	lead := g.OldLo - b.context
	if lead < 0 {
		lead = 0
	}
	tail := g.OldHi + b.context
	if tail > len(b.old) {
		tail = len(b.old)
	}

	h := &Hunk{
		OldStart: lead,
		OldEnd:   tail,
		NewStart: g.NewLo - (g.OldLo - lead),
		NewEnd:   g.NewHi + (tail - g.OldHi),
		leading:  g.OldLo - lead,
		trailing: tail - g.OldHi,
	}

	for _, line := range b.old[lead:g.OldLo] {
		h.Lines = append(h.Lines, " "+line)
	}
	// Deletions precede additions within the changed run.
	for _, line := range b.old[g.OldLo:g.OldHi] {
		h.Lines = append(h.Lines, "-"+line)
	}
	for _, line := range b.new[g.NewLo:g.NewHi] {
		h.Lines = append(h.Lines, "+"+line)
	}
	for _, line := range b.old[g.OldHi:tail] {
		h.Lines = append(h.Lines, " "+line)
	}

	b.offset += (g.NewHi - g.NewLo) - (g.OldHi - g.OldLo)
	h.LengthDiff = b.offset

	return h
}

// Merge folds cur into prev when their context windows touch or overlap,
// i.e. the start of cur's old range is not past the end of prev's. It
// reports whether the merge happened; when it does not, prev is final and
// must be flushed before cur becomes the pending hunk.
func (b *Builder) Merge(prev, cur *Hunk) bool {
	if cur.OldStart > prev.OldEnd {
		return false
	}

	// Drop prev's trailing and cur's leading context, then stitch the two
	// cores together with the exact run of unchanged lines between them so
	// the shared context is not duplicated.
	prevCoreHi := prev.OldEnd - prev.trailing
	curCoreLo := cur.OldStart + cur.leading

	lines := prev.Lines[:len(prev.Lines)-prev.trailing]
	for _, line := range b.old[prevCoreHi:curCoreLo] {
		lines = append(lines, " "+line)
	}
	lines = append(lines, cur.Lines[cur.leading:]...)

	prev.Lines = lines
	prev.OldEnd = cur.OldEnd
	prev.NewEnd = cur.NewEnd
	prev.trailing = cur.trailing
	prev.LengthDiff = cur.LengthDiff

	return true
}

// Hunks runs the full build-and-merge pass over an edit script. Match
// groups contribute context only; the last pending hunk is always flushed.
func Hunks(old, new Sequence, groups []ChangeGroup, context int) []*Hunk {
	b := NewBuilder(old, new, context)

	var hunks []*Hunk
	var pending *Hunk
	for _, g := range groups {
		if g.Op == OpMatch {
			continue
		}
		h := b.Build(g)
		if pending == nil {
			pending = h
			continue
		}
		if !b.Merge(pending, h) {
			hunks = append(hunks, pending)
			pending = h
		}
	}
	if pending != nil {
		hunks = append(hunks, pending)
	}

	return hunks
}
