package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// padRight pads s with spaces to width, measuring printable width so
// styled strings line up.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width printable cells, ending with an
// ellipsis when anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, "…")
}

// money formats an amount with the configured currency symbol.
func money(symbol string, amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", symbol, -amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// progressBar renders a filled/empty gauge of the given width. The
// fill is capped at 100% even when spending overshoots the budget; the
// color, not the length, carries the over-budget signal.
func progressBar(width int, percent float64, fill lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	bar := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// colorBar renders a solid bar of n cells in the given hex color,
// used for category share rows.
func colorBar(n int, hex string) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(strings.Repeat("▇", n))
}
