// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	address lipgloss.Style
	text    lipgloss.Style
	padding lipgloss.Style
	hex     lipgloss.Style
	binary  lipgloss.Style
}

// ANSI Color reference
// 2	Green
// 3	Yellow
// 4	Blue
// 6	Cyan
// 8	Bright Black (Gray)

func newStyles() styles {
	return styles{
		address: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		text:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		padding: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		hex:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		binary:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		address: plain,
		text:    plain,
		padding: plain,
		hex:     plain,
		binary:  plain,
	}
}
