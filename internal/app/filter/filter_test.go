package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/podcastr/internal/domain/episode"
)

func TestPlayableFilter_Check(t *testing.T) {
	tests := []struct {
		name         string
		ep           episode.Episode
		wantAccepted bool
	}{
		{
			name:         "playable",
			ep:           episode.Episode{Title: "E1", URL: "https://example.com/e1.mp3", Duration: 60},
			wantAccepted: true,
		},
		{
			name:         "missing url",
			ep:           episode.Episode{Title: "E1"},
			wantAccepted: false,
		},
		{
			name:         "missing title",
			ep:           episode.Episode{URL: "https://example.com/e1.mp3"},
			wantAccepted: false,
		},
		{
			name:         "negative duration",
			ep:           episode.Episode{Title: "E1", URL: "https://example.com/e1.mp3", Duration: -1},
			wantAccepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := (&PlayableFilter{}).Check(context.Background(), tt.ep)
			assert.Equal(t, tt.wantAccepted, result.Accepted)
			if !tt.wantAccepted {
				assert.Equal(t, "not_playable", result.Code)
			}
		})
	}
}

func TestDuplicateEpisodeFilter_Check(t *testing.T) {
	tests := []struct {
		name         string
		first        episode.Episode
		second       episode.Episode
		wantAccepted bool
	}{
		{
			name:         "same url",
			first:        episode.Episode{Title: "Ep 1", URL: "https://example.com/1.mp3"},
			second:       episode.Episode{Title: "Episode One", URL: "https://example.com/1.mp3"},
			wantAccepted: false,
		},
		{
			name:         "rerun with same members",
			first:        episode.Episode{Title: "Ep 1", Members: "Ana, Bia", URL: "https://example.com/1.mp3"},
			second:       episode.Episode{Title: "Ep 1 (Rerun)", Members: "ana, bia", URL: "https://example.com/1r.mp3"},
			wantAccepted: false,
		},
		{
			name:         "rerun prefix",
			first:        episode.Episode{Title: "Ep 1", URL: "https://example.com/1.mp3"},
			second:       episode.Episode{Title: "Replay: Ep 1", URL: "https://example.com/1r.mp3"},
			wantAccepted: false,
		},
		{
			name:         "same title different members",
			first:        episode.Episode{Title: "Ep 1", Members: "Ana", URL: "https://example.com/1.mp3"},
			second:       episode.Episode{Title: "Ep 1", Members: "Caio", URL: "https://example.com/2.mp3"},
			wantAccepted: true,
		},
		{
			name:         "different episodes",
			first:        episode.Episode{Title: "Ep 1", URL: "https://example.com/1.mp3"},
			second:       episode.Episode{Title: "Ep 2", URL: "https://example.com/2.mp3"},
			wantAccepted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDuplicateEpisodeFilter()
			require.True(t, f.Check(context.Background(), tt.first).Accepted)

			result := f.Check(context.Background(), tt.second)
			assert.Equal(t, tt.wantAccepted, result.Accepted)
			if !tt.wantAccepted {
				assert.Equal(t, "duplicate_episode", result.Code)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ep 1", "ep 1"},
		{"Ep 1 (Rerun)", "ep 1"},
		{"Ep 1 [Rebroadcast]", "ep 1"},
		{"Ep 1 - Replay", "ep 1"},
		{"Encore: Ep 1", "ep 1"},
		{"  Ep   1  ", "ep 1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeTitle(tt.input))
		})
	}
}

func TestChain_Execute(t *testing.T) {
	chain := NewChain()
	chain.Add(&PlayableFilter{})
	limit := NewDurationLimitFilter()
	require.NoError(t, limit.ValidateConfig(map[string]any{"max_seconds": 600}))
	chain.Add(limit)

	assert.True(t, chain.Execute(context.Background(), episode.Episode{Title: "ok", URL: "u", Duration: 60}).Accepted)

	// First rejection wins.
	result := chain.Execute(context.Background(), episode.Episode{Title: "bad", Duration: 6000})
	assert.False(t, result.Accepted)
	assert.Equal(t, "not_playable", result.Code)

	result = chain.Execute(context.Background(), episode.Episode{Title: "long", URL: "u", Duration: 6000})
	assert.Equal(t, "duration_limit_exceeded", result.Code)
}

func TestChain_Apply(t *testing.T) {
	chain := NewChain()
	chain.Add(&PlayableFilter{})
	chain.Add(NewDuplicateEpisodeFilter())

	eps := []episode.Episode{
		{Title: "E1", URL: "https://example.com/1.mp3"},
		{Title: "E2"},
		{Title: "E3", URL: "https://example.com/3.mp3"},
		{Title: "E1", URL: "https://example.com/1.mp3"},
	}

	got := chain.Apply(context.Background(), eps)
	require.Len(t, got, 2)
	assert.Equal(t, "E1", got[0].Title)
	assert.Equal(t, "E3", got[1].Title)

	// Stateful filters start fresh on every run.
	got = chain.Apply(context.Background(), eps)
	assert.Len(t, got, 2)
}

func TestRegistry(t *testing.T) {
	names := RegisteredNames()
	assert.Contains(t, names, "playable_filter")
	assert.Contains(t, names, "duration_limit_filter")
	assert.Contains(t, names, "duplicate_episode_filter")

	for name, factory := range GetRegistered() {
		f := factory()
		assert.Equal(t, name, f.Name())
		assert.NotEmpty(t, f.Description())
		assert.NotEmpty(t, f.ReturnCodes())
	}

	f, err := New("duration_limit_filter", map[string]any{"min_seconds": 60})
	require.NoError(t, err)
	assert.Equal(t, "duration_limit_filter", f.Name())

	_, err = New("duration_limit_filter", map[string]any{"min_seconds": -5})
	assert.Error(t, err)

	_, err = New("no_such_filter", nil)
	assert.Error(t, err)
}
