// Copyright LIMIT Lab, 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the colors for one resolved display mode.
type palette struct {
	fg, muted, accent, selected, border lipgloss.Color
}

var (
	lightPalette = palette{fg: "#111827", muted: "#6b7280", accent: "#2563eb", selected: "#dbeafe", border: "#d1d5db"}
	darkPalette  = palette{fg: "#e5e7eb", muted: "#9ca3af", accent: "#60a5fa", selected: "#1e3a8a", border: "#374151"}
)

type styles struct {
	title       lipgloss.Style
	tagline     lipgloss.Style
	facet       lipgloss.Style
	facetActive lipgloss.Style
	item        lipgloss.Style
	itemCursor  lipgloss.Style
	meta        lipgloss.Style
	help        lipgloss.Style
	empty       lipgloss.Style
	spark       lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		tagline:     lipgloss.NewStyle().Italic(true).Foreground(p.muted),
		facet:       lipgloss.NewStyle().Foreground(p.fg).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(p.border),
		facetActive: lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(p.accent),
		item:        lipgloss.NewStyle().Foreground(p.fg).PaddingLeft(2),
		itemCursor:  lipgloss.NewStyle().Foreground(p.fg).Background(p.selected).Bold(true).PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(p.accent),
		meta:        lipgloss.NewStyle().Foreground(p.muted).PaddingLeft(2),
		help:        lipgloss.NewStyle().Foreground(p.muted),
		empty:       lipgloss.NewStyle().Foreground(p.muted).Italic(true).PaddingLeft(2),
		spark:       lipgloss.NewStyle().Foreground(p.accent),
	}
}
