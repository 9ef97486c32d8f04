package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/podcastr/internal/app/playback"
	"github.com/osa030/podcastr/internal/domain/episode"
	podcastrv1 "github.com/osa030/podcastr/internal/gen/podcastr/v1"
	"github.com/osa030/podcastr/internal/infra/config"
	"github.com/osa030/podcastr/internal/infra/media"
)

const catalogYAML = `
episodes:
  - title: Episode 1
    members: Alice
    duration: 120
    url: https://example.com/1.mp3
  - title: Episode 2
    duration: 60
    url: https://example.com/2.mp3
  - title: Episode 3
    duration: 90
    url: https://example.com/3.mp3
`

type recordingStream struct {
	mu  sync.Mutex
	got []*podcastrv1.Notification
}

func (s *recordingStream) Send(n *podcastrv1.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return nil
}

func (s *recordingStream) types() []podcastrv1.NotificationType {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]podcastrv1.NotificationType, 0, len(s.got))
	for _, n := range s.got {
		types = append(types, n.Type)
	}
	return types
}

func newTestConfig(t *testing.T, catalog string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episodes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	autoplay := true
	return &config.Config{
		Catalog:  config.CatalogConfig{Name: "Test Podcasts"},
		Playback: config.PlaybackConfig{IndexPolicy: "reject", Autoplay: &autoplay},
		Sources: []config.SourceConfig{
			{Type: "file", DisplayName: "Local", Settings: map[string]any{"path": path}},
		},
	}
}

func newStartedManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(newTestConfig(t, catalogYAML), media.NewClock(media.ClockConfig{IntervalMs: 10}), nil)
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Close)
	return m
}

func TestManager_Start(t *testing.T) {
	m := newStartedManager(t)

	catalog := m.Catalog()
	assert.Equal(t, "Test Podcasts", catalog.Name)
	assert.Equal(t, "Local", catalog.Source)
	assert.Equal(t, 3, catalog.Len())

	status := m.GetStatus()
	assert.Equal(t, m.SessionID(), status.SessionID)
	assert.Equal(t, 3, status.CatalogSize)
	assert.Equal(t, "idle", status.State.Status)
	assert.Nil(t, status.State.Current)
}

func TestManager_StartWithoutEpisodes(t *testing.T) {
	m, err := NewManager(newTestConfig(t, "episodes: []"), media.NewClock(media.ClockConfig{}), nil)
	require.NoError(t, err)
	defer m.Close()

	assert.Error(t, m.Start(context.Background()))
	assert.ErrorIs(t, m.PlayEpisode(0), ErrCatalogEmpty)
	assert.ErrorIs(t, m.PlayCatalog(0), ErrCatalogEmpty)
}

func TestManager_PlayEpisode(t *testing.T) {
	m := newStartedManager(t)

	require.NoError(t, m.PlayEpisode(1))
	state := m.Store().Snapshot()
	require.Len(t, state.EpisodeList, 1)
	assert.Equal(t, "Episode 2", state.EpisodeList[0].Title)
	assert.True(t, state.IsPlaying)

	assert.ErrorIs(t, m.PlayEpisode(3), playback.ErrIndexOutOfRange)
	assert.ErrorIs(t, m.PlayEpisode(-1), playback.ErrIndexOutOfRange)
}

func TestManager_PlayCatalog(t *testing.T) {
	m := newStartedManager(t)

	require.NoError(t, m.PlayCatalog(2))
	state := m.Store().Snapshot()
	assert.Len(t, state.EpisodeList, 3)
	assert.Equal(t, 2, state.CurrentEpisodeIndex)
	assert.False(t, state.HasNext())
	assert.True(t, state.HasPrevious())

	err := m.PlayCatalog(5)
	assert.ErrorIs(t, err, playback.ErrIndexOutOfRange)
	assert.Equal(t, 2, m.Store().Snapshot().CurrentEpisodeIndex)
}

func TestManager_Notifications(t *testing.T) {
	m := newStartedManager(t)
	stream := &recordingStream{}
	m.GetNotificationManager().Subscribe(stream)

	require.NoError(t, m.PlayCatalog(0))
	m.Store().ToggleLoop()

	require.Eventually(t, func() bool {
		types := stream.types()
		return contains(types, podcastrv1.NotificationType_NOTIFICATION_TYPE_EPISODE_CHANGED) &&
			contains(types, podcastrv1.NotificationType_NOTIFICATION_TYPE_LOOPING_CHANGED) &&
			contains(types, podcastrv1.NotificationType_NOTIFICATION_TYPE_PROGRESS)
	}, 2*time.Second, 10*time.Millisecond)

	stream.mu.Lock()
	defer stream.mu.Unlock()
	for i, n := range stream.got {
		assert.Equal(t, m.SessionID(), n.SessionId)
		require.NotNil(t, n.State)
		if i > 0 {
			assert.Greater(t, n.SequenceNo, stream.got[i-1].SequenceNo)
		}
	}
}

func TestManager_Close(t *testing.T) {
	m, err := NewManager(newTestConfig(t, catalogYAML), media.NewClock(media.ClockConfig{IntervalMs: 10}), nil)
	require.NoError(t, err)
	require.NoError(t, m.Start(context.Background()))

	stream := &recordingStream{}
	m.GetNotificationManager().Subscribe(stream)

	m.Close()
	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end")
	}
	assert.Contains(t, stream.types(), podcastrv1.NotificationType_NOTIFICATION_TYPE_SESSION_ENDED)
}

func TestToPlayerState(t *testing.T) {
	state := playback.State{
		EpisodeList: []episode.Episode{
			{Title: "A", Duration: 100, URL: "a"},
			{Title: "B", Duration: 200, URL: "b"},
		},
		CurrentEpisodeIndex: 1,
		IsPlaying:           true,
	}

	ps := ToPlayerState(state, 42, 0)
	assert.Equal(t, "playing", ps.Status)
	require.NotNil(t, ps.Current)
	assert.Equal(t, "B", ps.Current.Title)
	assert.Equal(t, int32(42), ps.Progress)
	assert.Equal(t, int32(200), ps.Duration, "falls back to the episode duration")
	assert.True(t, ps.HasPrevious)
	assert.False(t, ps.HasNext)

	empty := ToPlayerState(playback.State{}, 0, 0)
	assert.Equal(t, "idle", empty.Status)
	assert.Nil(t, empty.Current)
	assert.Empty(t, empty.Queue)
}

func contains(types []podcastrv1.NotificationType, t podcastrv1.NotificationType) bool {
	for _, got := range types {
		if got == t {
			return true
		}
	}
	return false
}
