// Package theme centralizes the color palette and shared styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted terminal tones.
var (
	Primary = lipgloss.Color("#38BDF8") // Sky blue
	Accent  = lipgloss.Color("#FBBF24") // Amber
	Success = lipgloss.Color("#34D399") // Emerald
	Error   = lipgloss.Color("#FB7185") // Rose
	Text    = lipgloss.Color("#E2E8F0") // Light slate
	TextDim = lipgloss.Color("#64748B") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark slate
	Border  = lipgloss.Color("#334155") // Slate border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
