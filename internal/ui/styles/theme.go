package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand/accent colors
	Primary   lipgloss.Color // focused items, active states
	Secondary lipgloss.Color // secondary accent, gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style // Currently playing track
	Cursor  lipgloss.Style // Cursor row, focused panel
	Dimmed  lipgloss.Style // Cursor row, unfocused panel
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultTheme is used when the configured theme is unknown.
const DefaultTheme = "default"

var themes = map[string]*Theme{
	DefaultTheme: {
		Name:        DefaultTheme,
		Primary:     lipgloss.Color("#a78bfa"),
		Secondary:   lipgloss.Color("#f1a208"),
		FgBase:      lipgloss.Color("#c0c0c0"),
		FgMuted:     lipgloss.Color("#808080"),
		FgSubtle:    lipgloss.Color("#585858"),
		BgCursor:    lipgloss.Color("#303030"),
		Border:      lipgloss.Color("#585858"),
		BorderFocus: lipgloss.Color("#a78bfa"),
		Success:     lipgloss.Color("#42b883"),
		Error:       lipgloss.Color("#ff5555"),
		Warning:     lipgloss.Color("#f1a208"),
	},
	"ocean": {
		Name:        "ocean",
		Primary:     lipgloss.Color("#4fc1ff"),
		Secondary:   lipgloss.Color("#42b883"),
		FgBase:      lipgloss.Color("#d0d8e0"),
		FgMuted:     lipgloss.Color("#7f8c99"),
		FgSubtle:    lipgloss.Color("#4a5561"),
		BgCursor:    lipgloss.Color("#1f2d3a"),
		Border:      lipgloss.Color("#4a5561"),
		BorderFocus: lipgloss.Color("#4fc1ff"),
		Success:     lipgloss.Color("#42b883"),
		Error:       lipgloss.Color("#ff6b6b"),
		Warning:     lipgloss.Color("#ffd166"),
	},
	"mono": {
		Name:        "mono",
		Primary:     lipgloss.Color("#ffffff"),
		Secondary:   lipgloss.Color("#9e9e9e"),
		FgBase:      lipgloss.Color("#d0d0d0"),
		FgMuted:     lipgloss.Color("#8a8a8a"),
		FgSubtle:    lipgloss.Color("#5f5f5f"),
		BgCursor:    lipgloss.Color("#3a3a3a"),
		Border:      lipgloss.Color("#5f5f5f"),
		BorderFocus: lipgloss.Color("#ffffff"),
		Success:     lipgloss.Color("#d0d0d0"),
		Error:       lipgloss.Color("#ffffff"),
		Warning:     lipgloss.Color("#d0d0d0"),
	},
}

// Lookup returns the named theme. Unknown names yield the default theme and false.
func Lookup(name string) (*Theme, bool) {
	if t, ok := themes[name]; ok {
		return t, true
	}
	return themes[DefaultTheme], false
}

// Names returns the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Dimmed: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Underline(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
