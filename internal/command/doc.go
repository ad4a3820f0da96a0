// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI surface for chdiff. It wires flags,
// configuration-backed thresholds and the diff action.
package command
