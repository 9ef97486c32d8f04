// Package media provides adapters for the platform media playback primitive.
//
// An Element loads one source at a time, obeys play/pause/seek/loop commands
// and reports what the underlying player actually did as Events. Commands
// never report back directly; callers learn about state changes only from
// the event stream.
package media

import (
	"github.com/cockroachdb/errors"
)

// Errors
var (
	ErrNoSource = errors.New("no media source loaded")
	ErrClosed   = errors.New("media element closed")
)

// EventType represents a media element event type.
type EventType int

const (
	EventLoadedMetadata EventType = iota // Source metadata is available
	EventTimeUpdate                      // Playback position changed
	EventPlay                            // Playback started or resumed
	EventPause                           // Playback paused
	EventEnded                           // Playback reached the end (not emitted while looping)
	EventError                           // Backend failure
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventLoadedMetadata:
		return "loaded_metadata"
	case EventTimeUpdate:
		return "time_update"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is reported by an element.
type Event struct {
	Type       EventType
	Generation uint64  // Load generation the event belongs to
	Position   float64 // Current position in seconds
	Duration   float64 // Source duration in seconds (0 if unknown)
	Err        error   // Set for EventError
}

// LoadOptions configures a source load.
type LoadOptions struct {
	Autoplay bool // Start playing once loaded
	Loop     bool // Repeat the source instead of ending
	Duration int  // Duration hint in seconds
}

// Element is the media playback primitive.
type Element interface {
	// Load replaces the current source. It returns the new generation;
	// events of earlier generations are stale.
	Load(src string, opts LoadOptions) (uint64, error)
	// Unload drops the current source.
	Unload() error
	Play() error
	Pause() error
	// Seek sets the current position in seconds.
	Seek(seconds float64) error
	SetLoop(loop bool) error
	Events() <-chan Event
	Close() error
}

// Config selects and configures an element backend.
type Config struct {
	Backend            string // "clock" or "mpv"
	TimeUpdateInterval int    // Milliseconds between time updates (clock backend)
	MPV                MPVConfig
}

// New creates the element selected by cfg.Backend.
func New(cfg Config) (Element, error) {
	switch cfg.Backend {
	case "", "clock":
		return NewClock(ClockConfig{IntervalMs: cfg.TimeUpdateInterval}), nil
	case "mpv":
		return NewMPV(cfg.MPV)
	default:
		return nil, errors.Newf("unsupported media backend: %s", cfg.Backend)
	}
}
