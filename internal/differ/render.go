// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

var (
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AF5F"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D70000"))
	rangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AFD7"))
	headStyle   = lipgloss.NewStyle().Bold(true)
)

// Render colorizes the output view for a terminal: additions green,
// deletions red, hunk ranges cyan, file headers bold. Lines come back
// unstyled when color is false, so the same path serves pipes and files.
func Render(lines []string, color bool) []string {
	if !color {
		return lines
	}

	styled := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			styled[i] = headStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			styled[i] = rangeStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			styled[i] = addStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			styled[i] = removeStyle.Render(line)
		default:
			styled[i] = line
		}
	}

	return styled
}
