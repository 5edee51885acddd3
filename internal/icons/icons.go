// Package icons holds the glyphs used in panel rows and the controls bar.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder  string
	Audio   string
	Playing string
	Paused  string
	Stopped string
	Record  string
	Current string // queue marker for the loaded track
}

var (
	nerdIcons = Icons{
		Folder:  " ", // nf-fa-folder
		Audio:   " ", // nf-fa-music
		Playing: "",  // nf-fa-play
		Paused:  "",  // nf-fa-pause
		Stopped: "",  // nf-fa-stop
		Record:  " REC",
		Current: " ",
	}

	unicodeIcons = Icons{
		Folder:  "📁 ",
		Audio:   "🎵 ",
		Playing: "▶",
		Paused:  "⏸",
		Stopped: "■",
		Record:  "● REC",
		Current: "▶ ",
	}

	noneIcons = Icons{
		Folder:  "/",
		Playing: ">",
		Paused:  "||",
		Stopped: "[]",
		Record:  "REC",
		Current: "> ",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set. Call this once at startup with the config
// value; empty or unknown styles fall back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// FormatDir formats a directory name with the appropriate icon.
// The "none" style marks folders with a trailing slash instead.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatAudio formats an audio file name with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}

func Playing() string { return current.Playing }
func Paused() string  { return current.Paused }
func Stopped() string { return current.Stopped }
func Record() string  { return current.Record }

// Current returns the queue marker for the loaded track. Other rows are
// padded to the same width.
func Current() string { return current.Current }
