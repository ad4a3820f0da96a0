// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package textdiff aligns two line sequences, groups the differences into
// context hunks and renders them in unified-diff text format.
package textdiff
