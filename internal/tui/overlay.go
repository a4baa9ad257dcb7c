package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPopup centres card over base. Columns of base outside the card's
// painted span stay visible.
func renderPopup(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	under := canvasLines(base, width, height)
	over := canvasLines(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)
	out := make([]string, height)
	for i := range out {
		start, end, ok := paintedSpan(over[i], width)
		if !ok {
			out[i] = under[i]
			continue
		}
		left := ansi.Truncate(under[i], start, "")
		mid := ansi.Truncate(dropColumns(over[i], start), end-start, "")
		right := dropColumns(under[i], end)
		out[i] = padANSI(left+mid+right, width)
	}
	return strings.Join(out, "\n")
}

// paintedSpan returns the column range of line that holds non-blank cells.
// Columns are display cells, so wide runes count twice.
func paintedSpan(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	inner := strings.TrimLeft(trimmed, " ")
	if inner == "" {
		return 0, 0, false
	}
	start = ansi.StringWidth(trimmed[:len(trimmed)-len(inner)])
	return start, ansi.StringWidth(trimmed), true
}

// canvasLines splits s into exactly height lines of width columns.
func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padANSI(lines[i], width)
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
