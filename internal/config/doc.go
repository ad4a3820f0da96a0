// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the chdiff YAML configuration and exposes typed
// getters for dotted key paths.
package config
