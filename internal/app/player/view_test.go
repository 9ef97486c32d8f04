package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/podcastr/internal/app/playback"
	"github.com/osa030/podcastr/internal/domain/episode"
)

func TestRender_Empty(t *testing.T) {
	v := Render(playback.State{IsShuffling: true}, 30, 100)

	assert.True(t, v.Empty)
	assert.Equal(t, Placeholder, v.Placeholder)
	assert.False(t, v.ShowSlider)
	assert.Equal(t, playback.StatusIdle, v.Status)
	for name, c := range map[string]Control{
		"shuffle":   v.Controls.Shuffle,
		"previous":  v.Controls.Previous,
		"playpause": v.Controls.PlayPause,
		"next":      v.Controls.Next,
		"loop":      v.Controls.Loop,
	} {
		assert.False(t, c.Enabled, name)
	}
}

func TestRender_Controls(t *testing.T) {
	tests := []struct {
		name     string
		state    playback.State
		expected Controls
	}{
		{
			name:  "single episode",
			state: playback.State{EpisodeList: testEpisodes(1), IsPlaying: true},
			expected: Controls{
				Shuffle:   Control{Enabled: false},
				Previous:  Control{Enabled: false},
				PlayPause: Control{Enabled: true, Active: true},
				Next:      Control{Enabled: false},
				Loop:      Control{Enabled: true},
			},
		},
		{
			name:  "first of three",
			state: playback.State{EpisodeList: testEpisodes(3)},
			expected: Controls{
				Shuffle:   Control{Enabled: true},
				Previous:  Control{Enabled: false},
				PlayPause: Control{Enabled: true},
				Next:      Control{Enabled: true},
				Loop:      Control{Enabled: true},
			},
		},
		{
			name:  "last of three",
			state: playback.State{EpisodeList: testEpisodes(3), CurrentEpisodeIndex: 2, IsLooping: true},
			expected: Controls{
				Shuffle:   Control{Enabled: true},
				Previous:  Control{Enabled: true},
				PlayPause: Control{Enabled: true},
				Next:      Control{Enabled: false},
				Loop:      Control{Enabled: true, Active: true},
			},
		},
		{
			name:  "last of three shuffling",
			state: playback.State{EpisodeList: testEpisodes(3), CurrentEpisodeIndex: 2, IsShuffling: true},
			expected: Controls{
				Shuffle:   Control{Enabled: true, Active: true},
				Previous:  Control{Enabled: true},
				PlayPause: Control{Enabled: true},
				Next:      Control{Enabled: true},
				Loop:      Control{Enabled: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(tt.state, 0, 0)
			assert.False(t, v.Empty)
			assert.True(t, v.ShowSlider)
			assert.Equal(t, tt.expected, v.Controls)
		})
	}
}

func TestRender_Labels(t *testing.T) {
	state := playback.State{EpisodeList: []episode.Episode{{Title: "E1", Duration: 3725, URL: "u"}}}

	tests := []struct {
		name             string
		progress         int
		duration         int
		expectedProgress string
		expectedDuration string
	}{
		{"episode duration", 65, 0, "00:01:05", "01:02:05"},
		{"reported duration", 65, 120, "00:01:05", "00:02:00"},
		{"clamped progress", 500, 120, "00:02:00", "00:02:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(state, tt.progress, tt.duration)
			assert.Equal(t, tt.expectedProgress, v.ProgressLabel)
			assert.Equal(t, tt.expectedDuration, v.DurationLabel)
		})
	}
}

func TestView_Fraction(t *testing.T) {
	assert.Equal(t, 0.0, View{}.Fraction())
	assert.Equal(t, 0.25, View{Progress: 45, Duration: 180}.Fraction())
}
