// Package player defines the playback transport capability. Decoding and
// audio output live behind Transport; this package ships a transport that
// tracks state without producing sound.
package player

import (
	"errors"
	"time"
)

// ErrNoTrack is returned when playback is requested with nothing loaded.
var ErrNoTrack = errors.New("no track loaded")

// Transport is the playback contract the controls component drives.
type Transport interface {
	Load(path string) error
	Play() error
	Pause()
	Toggle()
	Stop()
	Seek(delta time.Duration)
	SetVolume(percent uint8)
	Volume() uint8
	ToggleRecording() bool
	Recording() bool
	State() State
	Track() string
	Position() time.Duration
	// Finished delivers the path of each track that played to its end.
	Finished() <-chan string
}

// Verify Null implements Transport at compile time.
var _ Transport = (*Null)(nil)

// Null is a Transport without audio output. It is used when no decoder is
// wired in and as a test double.
type Null struct {
	state     State
	track     string
	volume    uint8
	recording bool
	position  time.Duration
	loadErr   error
	loads     []string
	seeks     []time.Duration
	finished  chan string
}

// NewNull creates a stopped transport at full volume.
func NewNull() *Null {
	return &Null{
		volume:   100,
		finished: make(chan string, 1),
	}
}

func (n *Null) Load(path string) error {
	n.loads = append(n.loads, path)
	if n.loadErr != nil {
		return n.loadErr
	}
	n.track = path
	n.position = 0
	n.state = Playing
	return nil
}

func (n *Null) Play() error {
	switch n.state {
	case Paused:
		n.state = Playing
	case Stopped:
		if n.track == "" {
			return ErrNoTrack
		}
		n.position = 0
		n.state = Playing
	case Playing:
	}
	return nil
}

func (n *Null) Pause() {
	if n.state == Playing {
		n.state = Paused
	}
}

func (n *Null) Toggle() {
	switch n.state {
	case Playing:
		n.state = Paused
	case Paused:
		n.state = Playing
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (n *Null) Stop() {
	n.state = Stopped
	n.position = 0
}

func (n *Null) Seek(delta time.Duration) {
	n.seeks = append(n.seeks, delta)
	if !n.state.IsActive() {
		return
	}
	n.position = max(n.position+delta, 0)
}

func (n *Null) SetVolume(percent uint8) { n.volume = min(percent, 100) }

func (n *Null) Volume() uint8 { return n.volume }

func (n *Null) ToggleRecording() bool {
	n.recording = !n.recording
	return n.recording
}

func (n *Null) Recording() bool { return n.recording }

func (n *Null) State() State { return n.state }

func (n *Null) Track() string { return n.track }

func (n *Null) Position() time.Duration { return n.position }

func (n *Null) Finished() <-chan string { return n.finished }

// Test helpers

// SetLoadError makes subsequent Load calls fail with err.
func (n *Null) SetLoadError(err error) { n.loadErr = err }

// Loads returns every path passed to Load.
func (n *Null) Loads() []string { return n.loads }

// Seeks returns every delta passed to Seek.
func (n *Null) Seeks() []time.Duration { return n.seeks }

// SimulateFinished stops playback and reports the current track as finished.
func (n *Null) SimulateFinished() {
	if n.track == "" {
		return
	}
	n.state = Stopped
	select {
	case n.finished <- n.track:
	default:
	}
}
