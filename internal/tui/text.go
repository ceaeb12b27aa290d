package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/goals/internal/domain"
)

const ellipsis = "…"

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, ellipsis)
}

// spread places left and right at the two ends of a line of width cells.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// clampLines word-wraps text to width cells and keeps at most n lines.
// The last kept line ends with an ellipsis when text was cut.
func clampLines(text string, width, n int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width < 1 || n < 1 {
		return nil
	}

	var lines []string
	var cur string
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	lines = append(lines, cur)

	cut := len(lines) > n
	if cut {
		lines = lines[:n]
	}
	for i, l := range lines {
		lines[i] = truncate(l, width)
	}
	if cut {
		last := lines[n-1]
		if runewidth.StringWidth(last)+runewidth.StringWidth(ellipsis) > width {
			last = runewidth.Truncate(last, width-runewidth.StringWidth(ellipsis), "")
		}
		if !strings.HasSuffix(last, ellipsis) {
			last += ellipsis
		}
		lines[n-1] = last
	}
	return lines
}

// formatDate renders a YYYY-MM-DD target date for display.
// Unparseable values are shown as stored.
func formatDate(s string) string {
	t, err := domain.ParseTargetDate(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}
