// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package guard decides whether a diff is safe and useful to compute:
// binary detection, size thresholds and the configured text encoding.
package guard
