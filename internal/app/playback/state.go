// Package playback provides the playback state container: the episode queue,
// the current index and the transport flags.
package playback

import "github.com/osa030/podcastr/internal/domain/episode"

// Status represents the coarse playback status derived from State.
type Status int

const (
	StatusIdle    Status = iota // Queue is empty
	StatusPlaying               // An episode is selected and playing
	StatusPaused                // An episode is selected and paused
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// State is a snapshot of the playback state.
type State struct {
	EpisodeList         []episode.Episode
	CurrentEpisodeIndex int
	IsPlaying           bool
	IsLooping           bool
	IsShuffling         bool

	// EpisodeSeq increments every time the current episode is (re)selected.
	EpisodeSeq uint64
}

// HasPrevious reports whether there is an episode before the current one.
func (s State) HasPrevious() bool {
	return s.CurrentEpisodeIndex > 0
}

// HasNext reports whether PlayNext would select an episode.
func (s State) HasNext() bool {
	return s.IsShuffling || s.CurrentEpisodeIndex+1 < len(s.EpisodeList)
}

// IsEmpty reports whether the queue is empty ("no selection").
func (s State) IsEmpty() bool {
	return len(s.EpisodeList) == 0
}

// Current returns the current episode. It returns false for an empty queue.
func (s State) Current() (episode.Episode, bool) {
	if s.CurrentEpisodeIndex < 0 || s.CurrentEpisodeIndex >= len(s.EpisodeList) {
		return episode.Episode{}, false
	}
	return s.EpisodeList[s.CurrentEpisodeIndex], true
}

// Status returns the coarse playback status.
func (s State) Status() Status {
	if s.IsEmpty() {
		return StatusIdle
	}
	if s.IsPlaying {
		return StatusPlaying
	}
	return StatusPaused
}

// clone returns a copy that shares no slice storage with s.
func (s State) clone() State {
	c := s
	c.EpisodeList = make([]episode.Episode, len(s.EpisodeList))
	copy(c.EpisodeList, s.EpisodeList)
	return c
}
