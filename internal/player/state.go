package player

// State is the transport state.
//
//	          load+play            pause
//	Stopped ───────────▶ Playing ─────────▶ Paused
//	   ▲                  │   ▲               │
//	   │        stop      │   └─── play ──────┘
//	   └──────────────────┴──────── stop ─────┘
//
// Toggle flips Playing and Paused and is a no-op when Stopped. Play while
// Stopped restarts the loaded track, if any.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
