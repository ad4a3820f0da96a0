// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ orchestrates a single file comparison: it applies the
// content guard, runs the align/hunk/format pipeline and exposes the two
// consumer views of the result.
package differ
