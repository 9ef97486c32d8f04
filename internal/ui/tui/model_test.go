package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/podcastr/internal/app/player"
	"github.com/osa030/podcastr/internal/app/session"
	podcastrv1 "github.com/osa030/podcastr/internal/gen/podcastr/v1"
	"github.com/osa030/podcastr/internal/infra/config"
	"github.com/osa030/podcastr/internal/infra/media"
)

const catalogYAML = `
episodes:
  - title: Faladev 30
    members: Diego, Richard
    duration: 3981
    url: https://example.com/30.mp3
  - title: Faladev 31
    members: Diego
    duration: 2400
    url: https://example.com/31.mp3
  - title: Faladev 32
    duration: 1800
    url: https://example.com/32.mp3
`

func newTestModel(t *testing.T) (*Model, *session.Manager) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episodes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	autoplay := false
	cfg := &config.Config{
		Catalog:  config.CatalogConfig{Name: "Faladev"},
		Playback: config.PlaybackConfig{IndexPolicy: "reject", Autoplay: &autoplay},
		Sources: []config.SourceConfig{
			{Type: "file", DisplayName: "Local", Settings: map[string]any{"path": path}},
		},
	}

	s, err := session.NewManager(cfg, media.NewClock(media.ClockConfig{IntervalMs: 10}), nil)
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(s.Close)

	m := New(s)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, s
}

// settle waits until the loaded source reported its metadata and the
// resulting element events were applied.
func settle(t *testing.T, s *session.Manager, duration int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.Player().Duration() == duration
	}, 2*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_EmptyView(t *testing.T) {
	m, _ := newTestModel(t)

	assert.True(t, m.view.Empty)
	out := m.View()
	assert.Contains(t, out, player.Placeholder)
	assert.Contains(t, out, "Faladev 31")

	for _, b := range []bool{
		m.keys.togglePlay.Enabled(),
		m.keys.next.Enabled(),
		m.keys.previous.Enabled(),
		m.keys.shuffle.Enabled(),
		m.keys.loop.Enabled(),
		m.keys.forward.Enabled(),
	} {
		assert.False(t, b)
	}
}

func TestModel_PlayFromList(t *testing.T) {
	m, s := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	state := s.Store().Snapshot()
	assert.Len(t, state.EpisodeList, 3)
	assert.Equal(t, 1, state.CurrentEpisodeIndex)
	assert.True(t, state.IsPlaying)

	assert.False(t, m.view.Empty)
	assert.Equal(t, "Faladev 31", m.view.Episode.Title)
	assert.True(t, m.keys.next.Enabled())
	assert.True(t, m.keys.previous.Enabled())
	assert.Contains(t, m.View(), "2/3")
}

func TestModel_PlaySingle(t *testing.T) {
	m, s := newTestModel(t)

	m.Update(runes("p"))

	state := s.Store().Snapshot()
	require.Len(t, state.EpisodeList, 1)
	assert.Equal(t, "Faladev 30", state.EpisodeList[0].Title)
	assert.False(t, m.keys.next.Enabled())
	assert.False(t, m.keys.shuffle.Enabled(), "shuffle needs more than one episode")
}

func TestModel_TransportKeys(t *testing.T) {
	m, s := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	tests := []struct {
		name  string
		key   tea.KeyMsg
		check func(t *testing.T)
	}{
		{
			name: "space pauses",
			key:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			check: func(t *testing.T) {
				assert.False(t, s.Store().Snapshot().IsPlaying)
			},
		},
		{
			name: "n selects next",
			key:  runes("n"),
			check: func(t *testing.T) {
				assert.Equal(t, 1, s.Store().Snapshot().CurrentEpisodeIndex)
			},
		},
		{
			name: "b selects previous",
			key:  runes("b"),
			check: func(t *testing.T) {
				assert.Equal(t, 0, s.Store().Snapshot().CurrentEpisodeIndex)
			},
		},
		{
			name: "s toggles shuffle",
			key:  runes("s"),
			check: func(t *testing.T) {
				assert.True(t, s.Store().Snapshot().IsShuffling)
				assert.True(t, m.view.Controls.Shuffle.Active)
			},
		},
		{
			name: "l toggles loop",
			key:  runes("l"),
			check: func(t *testing.T) {
				assert.True(t, s.Store().Snapshot().IsLooping)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Update(tt.key)
			tt.check(t)
		})
	}
}

func TestModel_Seek(t *testing.T) {
	m, s := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.False(t, s.Store().Snapshot().IsPlaying)
	settle(t, s, 3981)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 20, s.Player().Progress())

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 10, s.Player().Progress())
	assert.Equal(t, "00:00:10", m.view.ProgressLabel)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_Updates(t *testing.T) {
	m, s := newTestModel(t)
	id := s.GetNotificationManager().Subscribe(m.updates)
	defer s.GetNotificationManager().Unsubscribe(id)

	cmd := m.Init()
	s.Store().ToggleLoop()

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		assert.IsType(t, updateMsg{}, msg)
		m.Update(msg)
		assert.True(t, m.view.Controls.Loop.Active)
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
	}
}

func TestUpdateStream_Coalesces(t *testing.T) {
	s := updateStream{ch: make(chan struct{}, 1)}
	for range 3 {
		require.NoError(t, s.Send(&podcastrv1.Notification{}))
	}
	assert.Len(t, s.ch, 1)
}
