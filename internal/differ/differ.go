// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/chdiff/chdiff/internal/guard"
	"github.com/chdiff/chdiff/internal/log"
	"github.com/chdiff/chdiff/internal/textdiff"
)

// Short statuses returned by Diff.
const (
	StatusNoDiff    = "(no diff)"
	StatusAvailable = "(diff available)"
)

// LongReason is the suppression status for rendered output over the
// character threshold.
func LongReason(threshold int) string {
	return fmt.Sprintf("(long diff of over %d characters, diff output suppressed)", threshold)
}

// Differ computes one unified diff between an old and a new file and
// retains the detailed view. A Differ is single-use: construct a fresh one
// per comparison so no state leaks across calls.
type Differ struct {
	limits  guard.Limits
	enc     *guard.Encoding
	context int
	aligner textdiff.Aligner

	status string
	lines  []string
}

// Option follows the functional options pattern to configure a Differ.
type Option func(*Differ)

// WithContext overrides the number of context lines shown per side.
func WithContext(n int) Option {
	return func(d *Differ) {
		d.context = n
	}
}

// WithEncoding sets the text encoding used to interpret input bytes.
func WithEncoding(enc *guard.Encoding) Option {
	return func(d *Differ) {
		d.enc = enc
	}
}

// WithAligner injects an alternative alignment strategy.
func WithAligner(a textdiff.Aligner) Option {
	return func(d *Differ) {
		d.aligner = a
	}
}

// New returns a Differ bound to the given threshold policy.
func New(limits guard.Limits, opts ...Option) *Differ {
	d := &Differ{
		limits:  limits,
		enc:     guard.UTF8,
		context: textdiff.DefaultContext,
		aligner: textdiff.NewAligner(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diff compares the content of oldPath against newPath. It always returns
// a short displayable status: a suppression reason, "(no diff)",
// "(diff available)" when the detailed lines were retained, or an error
// description. Any failure inside the pipeline is converted to a status
// rather than propagated.
func (d *Differ) Diff(oldPath, newPath string) string {
	d.status = ""
	d.lines = nil

	status, err := d.compute(oldPath, newPath)
	if err != nil {
		status = "Could not determine diff. Error: " + err.Error()
		log.WithError(err).Debugf("diff of %s and %s failed", oldPath, newPath)
	}

	d.status = status
	return d.status
}

// ForOutput returns the retained diff lines, or the short status/error as
// a single-element view when no detail exists. This is the terminal view.
func (d *Differ) ForOutput() []string {
	if d.lines != nil {
		return d.lines
	}
	return []string{d.status}
}

// ForReporting returns the empty string when no diff detail was retained,
// which keeps callers from reporting diffs for suppressed comparisons or
// newly created files with nothing to show. Otherwise it returns the
// retained lines joined with the literal two-character `\n` separator, the
// structured reporting wire format.
func (d *Differ) ForReporting() string {
	if d.lines == nil {
		return ""
	}
	return strings.Join(d.lines, `\n`)
}

func (d *Differ) compute(oldPath, newPath string) (string, error) {
	old, releaseOld, err := d.resolve(oldPath)
	if err != nil {
		return "", err
	}
	defer releaseOld()

	new, releaseNew, err := d.resolve(newPath)
	if err != nil {
		return "", err
	}
	defer releaseNew()

	log.Debugf("comparing %s (%s) with %s (%s)",
		old.label, humanize.Bytes(uint64(old.content.Size)),
		new.label, humanize.Bytes(uint64(new.content.Size)))

	if decision := guard.Evaluate(old.content, new.content, d.limits); decision.Suppressed {
		log.Debugf("diff suppressed: %s", decision.Reason)
		return decision.Reason, nil
	}

	oldSeq := textdiff.NewSequence(old.content.Text)
	newSeq := textdiff.NewSequence(new.content.Text)

	groups := d.aligner.Align(oldSeq, newSeq)
	changed := 0
	for _, g := range groups {
		if g.Op != textdiff.OpMatch {
			changed++
		}
	}
	if changed == 0 {
		log.Debugf("no differences between %s and %s", old.label, new.label)
		return StatusNoDiff, nil
	}

	hunks := textdiff.Hunks(oldSeq, newSeq, groups, d.context)
	text := textdiff.Unified(
		textdiff.FileInfo{Label: old.label, ModTime: old.mtime},
		textdiff.FileInfo{Label: new.label, ModTime: new.mtime},
		hunks)
	if text == "" {
		return StatusNoDiff, nil
	}

	if d.limits.OutputThreshold > 0 && len(text) > d.limits.OutputThreshold {
		// Hard cutoff: the detail is discarded, never retained.
		log.Debugf("diff of %d characters over threshold %d", len(text), d.limits.OutputThreshold)
		return LongReason(d.limits.OutputThreshold), nil
	}

	text = guard.Repair(text)
	d.lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	return StatusAvailable, nil
}

// side is one resolved input: its header label, modification time and
// guarded content.
type side struct {
	label   string
	mtime   time.Time
	content guard.Side
}

// resolve stats and reads one input. A missing input is substituted with a
// scoped empty temp-file placeholder, so a nonexistent old side reads as
// file creation and a nonexistent new side as deletion. The returned
// release func removes the placeholder and is safe to call on every exit
// path.
func (d *Differ) resolve(path string) (side, func(), error) {
	release := func() {}
	s := side{label: path}

	read := path
	fi, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return s, release, err
		}
		tmp, err := os.CreateTemp("", "chdiff-empty-")
		if err != nil {
			return s, release, err
		}
		read = tmp.Name()
		release = func() {
			os.Remove(read)
		}
		if err := tmp.Close(); err != nil {
			return s, release, err
		}
		if fi, err = os.Stat(read); err != nil {
			return s, release, err
		}
		log.Debugf("substituted empty placeholder for missing %s", path)
	}

	s.mtime = fi.ModTime()
	s.content.Size = fi.Size()

	// Inputs past the size threshold are suppressed on size alone, and a
	// disabled diff is suppressed outright, so their content is never
	// loaded.
	if d.limits.Disabled ||
		(d.limits.FileSizeThreshold > 0 && s.content.Size > d.limits.FileSizeThreshold) {
		return s, release, nil
	}

	raw, err := os.ReadFile(read)
	if err != nil {
		return s, release, err
	}
	s.content.Text, s.content.DecodeErr = d.enc.Decode(raw)

	return s, release, nil
}
