// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the configured text encoding used to interpret input bytes.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default encoding.
var UTF8 = &Encoding{name: "utf-8", enc: unicode.UTF8}

// LookupEncoding resolves an IANA encoding name ("utf-8", "latin1", ...)
// to an Encoding. An empty name selects UTF-8.
func LookupEncoding(name string) (*Encoding, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return &Encoding{name: name, enc: enc}, nil
}

// Name returns the encoding's configured name.
func (e *Encoding) Name() string {
	return e.name
}

// Decode interprets raw bytes as text in the encoding, transcoded to
// UTF-8. Individual byte sequences with no interpretation in the encoding
// come back as U+FFFD; a structural decode failure is returned as an
// error.
func (e *Encoding) Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	if e.enc == unicode.UTF8 {
		return Repair(string(b)), nil
	}
	out, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Repair replaces any byte sequence invalid in UTF-8 with the U+FFFD
// placeholder rather than failing.
func Repair(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
