package player

import (
	"github.com/osa030/podcastr/internal/app/playback"
	"github.com/osa030/podcastr/internal/domain/episode"
)

// Placeholder is shown when no episode is selected.
const Placeholder = "Select a podcast to listen"

// Control is the render state of one transport control.
type Control struct {
	Enabled bool
	Active  bool // Toggle is on (shuffle, loop) or the player is playing (play/pause)
}

// Controls holds the transport controls in display order.
type Controls struct {
	Shuffle   Control
	Previous  Control
	PlayPause Control
	Next      Control
	Loop      Control
}

// View is everything a front end needs to draw the player.
type View struct {
	Empty       bool
	Placeholder string // Set when Empty

	Episode episode.Episode
	Index   int // Position of Episode in the queue
	Total   int // Queue length
	Status  playback.Status

	ShowSlider    bool
	Progress      int // seconds
	Duration      int // seconds
	ProgressLabel string
	DurationLabel string

	Controls Controls
}

// Render builds a view from a store state and local progress.
func Render(state playback.State, progress, duration int) View {
	v := View{
		Total:         len(state.EpisodeList),
		Status:        state.Status(),
		ProgressLabel: episode.FormatDuration(0),
		DurationLabel: episode.FormatDuration(0),
	}

	ep, ok := state.Current()
	if !ok {
		v.Empty = true
		v.Placeholder = Placeholder
		v.Controls = Controls{
			Shuffle:   Control{Active: state.IsShuffling},
			PlayPause: Control{Active: state.IsPlaying},
			Loop:      Control{Active: state.IsLooping},
		}
		return v
	}

	if duration <= 0 {
		duration = ep.Duration
	}
	progress = max(0, progress)
	if duration > 0 {
		progress = min(progress, duration)
	}

	v.Episode = ep
	v.Index = state.CurrentEpisodeIndex
	v.ShowSlider = true
	v.Progress = progress
	v.Duration = duration
	v.ProgressLabel = episode.FormatDuration(progress)
	v.DurationLabel = episode.FormatDuration(duration)
	v.Controls = Controls{
		Shuffle:   Control{Enabled: len(state.EpisodeList) > 1, Active: state.IsShuffling},
		Previous:  Control{Enabled: state.HasPrevious()},
		PlayPause: Control{Enabled: true, Active: state.IsPlaying},
		Next:      Control{Enabled: state.HasNext()},
		Loop:      Control{Enabled: true, Active: state.IsLooping},
	}
	return v
}

// Fraction returns progress as a value in [0, 1] for sliders.
func (v View) Fraction() float64 {
	if v.Duration <= 0 {
		return 0
	}
	return float64(v.Progress) / float64(v.Duration)
}
