package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	colors := blendColors(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex())).Render(cluster))
	}
	return b.String()
}

// Bar renders a horizontal level meter of width cells, filled to
// percent (0-100). The filled part fades from Primary to Secondary.
func (t *Theme) Bar(percent uint8, width int) string {
	if width <= 0 {
		return ""
	}
	filled := FilledCells(percent, width)
	return ApplyGradient(strings.Repeat("█", filled), t.Primary, t.Secondary) +
		t.S().Subtle.Render(strings.Repeat("░", width-filled))
}

// FilledCells returns how many of width cells a percent level fills.
func FilledCells(percent uint8, width int) int {
	p := min(int(percent), 100)
	return p * width / 100
}

// blendColors returns size colors blended between from and to in HCL space.
func blendColors(size int, from, to lipgloss.Color) []colorful.Color {
	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))

	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// toColor converts a hex lipgloss.Color; ANSI indexes fall back to gray.
func toColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
