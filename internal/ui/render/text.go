// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (tab excepted) and invalid UTF-8 and
// turns non-breaking spaces into plain ones. Tag metadata goes through it
// before reaching the terminal.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == unicode.ReplacementChar || r == '\u00a0' || (r != '\t' && unicode.IsControl(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == unicode.ReplacementChar:
			return -1
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate shortens plain text to maxWidth cells, ending with "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// TruncateStyled shortens text that may carry ANSI styling without breaking
// escape sequences.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Fit truncates then pads so the output is exactly width cells wide.
func Fit(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row creates a row with left and right aligned content separated by spaces.
// When both do not fit, the left side is truncated.
func Row(left, right string, width int) string {
	rightWidth := ansi.StringWidth(right)
	leftWidth := width - rightWidth - 1
	if leftWidth < 1 {
		return TruncateStyled(right, width)
	}
	left = TruncateStyled(left, leftWidth)
	gap := width - ansi.StringWidth(left) - rightWidth
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
