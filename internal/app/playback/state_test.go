package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Derived(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		index       int
		shuffling   bool
		hasPrevious bool
		hasNext     bool
	}{
		{name: "empty", length: 0, index: 0, hasPrevious: false, hasNext: false},
		{name: "empty shuffling", length: 0, index: 0, shuffling: true, hasPrevious: false, hasNext: true},
		{name: "single", length: 1, index: 0, hasPrevious: false, hasNext: false},
		{name: "first of three", length: 3, index: 0, hasPrevious: false, hasNext: true},
		{name: "middle of three", length: 3, index: 1, hasPrevious: true, hasNext: true},
		{name: "last of three", length: 3, index: 2, hasPrevious: true, hasNext: false},
		{name: "last of three shuffling", length: 3, index: 2, shuffling: true, hasPrevious: true, hasNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{
				EpisodeList:         testEpisodes(tt.length),
				CurrentEpisodeIndex: tt.index,
				IsShuffling:         tt.shuffling,
			}
			assert.Equal(t, tt.hasPrevious, s.HasPrevious())
			assert.Equal(t, tt.hasNext, s.HasNext())
		})
	}
}

func TestState_Current(t *testing.T) {
	eps := testEpisodes(2)

	s := State{EpisodeList: eps, CurrentEpisodeIndex: 1}
	e, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, eps[1], e)

	s = State{EpisodeList: eps, CurrentEpisodeIndex: 5}
	_, ok = s.Current()
	assert.False(t, ok, "out of range index is treated as no selection")
}

func TestState_Status(t *testing.T) {
	assert.Equal(t, StatusIdle, State{}.Status())
	assert.Equal(t, StatusPaused, State{EpisodeList: testEpisodes(1)}.Status())
	assert.Equal(t, StatusPlaying, State{EpisodeList: testEpisodes(1), IsPlaying: true}.Status())
	assert.Equal(t, "playing", StatusPlaying.String())
	assert.Equal(t, "unknown", Status(42).String())
}
