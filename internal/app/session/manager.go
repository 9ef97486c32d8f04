// Package session provides the session manager that wires the catalog, the
// playback store, the player and the notification manager together.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/app/notification"
	"github.com/osa030/podcastr/internal/app/playback"
	"github.com/osa030/podcastr/internal/app/player"
	"github.com/osa030/podcastr/internal/app/source"
	"github.com/osa030/podcastr/internal/domain/episode"
	"github.com/osa030/podcastr/internal/domain/playlist"
	podcastrv1 "github.com/osa030/podcastr/internal/gen/podcastr/v1"
	"github.com/osa030/podcastr/internal/infra/config"
	"github.com/osa030/podcastr/internal/infra/media"
)

// ErrCatalogEmpty is returned when the catalog has no episode to play.
var ErrCatalogEmpty = errors.New("catalog is empty")

const sessionEndedTimeout = time.Second

// Manager manages the podcast session.
type Manager struct {
	mu sync.RWMutex

	config    *config.Config
	sessionID string

	// Components
	store        *playback.Store
	element      media.Element
	player       *player.Player
	provider     *source.ProviderChain
	notification *notification.Manager

	catalog playlist.Playlist
	started bool

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewManager creates a new session manager. spotifyClient may be nil when
// no spotify source is configured.
func NewManager(cfg *config.Config, element media.Element, spotifyClient source.SpotifyClient) (*Manager, error) {
	filters, err := source.NewFilterChainFromConfig(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create filter chain")
	}

	provider, err := source.NewProviderChainFromConfig(cfg, spotifyClient, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create provider chain")
	}

	store := playback.NewStore(playback.Config{
		IndexPolicy:        playback.IndexPolicy(cfg.Playback.IndexPolicy),
		ShuffleAvoidRepeat: cfg.Playback.ShuffleAvoidRepeat,
	})

	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		config:       cfg,
		sessionID:    uuid.New().String(),
		store:        store,
		element:      element,
		player:       player.New(store, element, player.Config{Autoplay: cfg.Playback.AutoplayEnabled()}),
		provider:     provider,
		notification: notification.NewManager(),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}, nil
}

// Start loads the catalog and starts the player and notification loops.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	catalog, err := m.provider.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog")
	}

	m.mu.Lock()
	m.catalog = catalog
	m.started = true
	m.mu.Unlock()

	zlog.Info().Msgf("session started: session_id=%s catalog=%s episodes=%d source=%s",
		m.sessionID, catalog.Name, catalog.Len(), catalog.Source)

	sub := m.store.Subscribe()
	go m.notificationLoop(sub)
	go func() {
		if err := m.player.Run(m.ctx); err != nil && !errors.Is(err, context.Canceled) {
			zlog.Error().Msgf("player stopped: %v", err)
		}
		m.terminate()
	}()

	return nil
}

// Catalog returns the loaded catalog.
func (m *Manager) Catalog() playlist.Playlist {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// PlayEpisode plays the catalog episode at index as a single-episode queue.
func (m *Manager) PlayEpisode(index int) error {
	catalog := m.Catalog()
	if catalog.Len() == 0 {
		return ErrCatalogEmpty
	}
	ep, ok := catalog.At(index)
	if !ok {
		return errors.Wrapf(playback.ErrIndexOutOfRange, "index %d of %d", index, catalog.Len())
	}
	zlog.Info().Msgf("play episode: index=%d title=%s", index, ep.Title)
	m.store.Play(ep)
	return nil
}

// PlayCatalog queues the whole catalog and starts at index.
func (m *Manager) PlayCatalog(index int) error {
	catalog := m.Catalog()
	if catalog.Len() == 0 {
		return ErrCatalogEmpty
	}
	if err := m.store.PlayList(catalog.Episodes, index); err != nil {
		return errors.Wrapf(err, "index %d of %d", index, catalog.Len())
	}
	zlog.Info().Msgf("play catalog: index=%d episodes=%d", index, catalog.Len())
	return nil
}

// Store returns the playback store.
func (m *Manager) Store() *playback.Store {
	return m.store
}

// Player returns the player.
func (m *Manager) Player() *player.Player {
	return m.player
}

// SessionID returns the session id.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// Status represents the current session status.
type Status struct {
	SessionID       string
	CatalogName     string
	CatalogSize     int
	SubscriberCount int
	State           *podcastrv1.PlayerState
}

// GetStatus returns the current session status.
func (m *Manager) GetStatus() *Status {
	catalog := m.Catalog()
	return &Status{
		SessionID:       m.sessionID,
		CatalogName:     catalog.Name,
		CatalogSize:     catalog.Len(),
		SubscriberCount: m.notification.SubscriberCount(),
		State:           m.PlayerState(),
	}
}

// PlayerState returns the current store state and local progress.
func (m *Manager) PlayerState() *podcastrv1.PlayerState {
	return ToPlayerState(m.store.Snapshot(), m.player.Progress(), m.player.Duration())
}

// GetNotificationManager returns the notification manager.
func (m *Manager) GetNotificationManager() *notification.Manager {
	return m.notification
}

// Done returns a channel that is closed when the session ends.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Close ends the session and releases the element and the store.
func (m *Manager) Close() {
	m.cancel()
	if err := m.element.Close(); err != nil {
		zlog.Warn().Msgf("failed to close media element: %v", err)
	}
	m.store.Close()

	m.mu.RLock()
	started := m.started
	m.mu.RUnlock()
	if !started {
		m.terminate()
	}
	<-m.done
	m.notification.Close()
}

// notificationLoop forwards store events and player progress to subscribers.
func (m *Manager) notificationLoop(sub *playback.Subscription) {
	defer sub.Close()

	lastProgress, lastDuration := -1, -1
	for {
		select {
		case <-m.ctx.Done():
			return
		case e, ok := <-sub.Events():
			if !ok {
				return
			}
			zlog.Debug().Msgf("playback event: type=%s", e.Type)
			m.broadcast(notificationType(e.Type), ToPlayerState(e.State, m.player.Progress(), m.player.Duration()))
		case <-m.player.Changes():
			progress, duration := m.player.Progress(), m.player.Duration()
			if progress == lastProgress && duration == lastDuration {
				continue
			}
			lastProgress, lastDuration = progress, duration
			m.broadcast(podcastrv1.NotificationType_NOTIFICATION_TYPE_PROGRESS, m.PlayerState())
		}
	}
}

func (m *Manager) broadcast(t podcastrv1.NotificationType, state *podcastrv1.PlayerState) {
	m.notification.Broadcast(&podcastrv1.Notification{
		Type:      t,
		SessionId: m.sessionID,
		State:     state,
	})
}

// terminate broadcasts the end of the session and closes Done.
func (m *Manager) terminate() {
	m.closeOnce.Do(func() {
		zlog.Info().Msgf("broadcast SESSION_ENDED: session_id=%s", m.sessionID)

		done := make(chan struct{})
		go func() {
			defer close(done)
			m.broadcast(podcastrv1.NotificationType_NOTIFICATION_TYPE_SESSION_ENDED, m.PlayerState())
		}()

		select {
		case <-done:
		case <-time.After(sessionEndedTimeout):
			zlog.Warn().Msg("session ended notification timed out")
		}

		m.cancel()
		close(m.done)
	})
}

func notificationType(t playback.EventType) podcastrv1.NotificationType {
	switch t {
	case playback.EventEpisodeChanged:
		return podcastrv1.NotificationType_NOTIFICATION_TYPE_EPISODE_CHANGED
	case playback.EventPlayingChanged:
		return podcastrv1.NotificationType_NOTIFICATION_TYPE_PLAYING_CHANGED
	case playback.EventLoopingChanged:
		return podcastrv1.NotificationType_NOTIFICATION_TYPE_LOOPING_CHANGED
	case playback.EventShufflingChanged:
		return podcastrv1.NotificationType_NOTIFICATION_TYPE_SHUFFLING_CHANGED
	case playback.EventQueueCleared:
		return podcastrv1.NotificationType_NOTIFICATION_TYPE_QUEUE_CLEARED
	default:
		return podcastrv1.NotificationType_NOTIFICATION_TYPE_UNSPECIFIED
	}
}

// ToEpisode converts a domain episode to its RPC message.
func ToEpisode(ep episode.Episode) *podcastrv1.Episode {
	return &podcastrv1.Episode{
		Title:     ep.Title,
		Members:   ep.Members,
		Thumbnail: ep.Thumbnail,
		Duration:  int32(ep.Duration),
		Url:       ep.URL,
	}
}

// ToEpisodes converts a list of domain episodes.
func ToEpisodes(eps []episode.Episode) []*podcastrv1.Episode {
	out := make([]*podcastrv1.Episode, len(eps))
	for i, ep := range eps {
		out[i] = ToEpisode(ep)
	}
	return out
}

// ToPlayerState converts a store snapshot and local progress to its RPC message.
func ToPlayerState(state playback.State, progress, duration int) *podcastrv1.PlayerState {
	ps := &podcastrv1.PlayerState{
		Status:       state.Status().String(),
		Queue:        ToEpisodes(state.EpisodeList),
		CurrentIndex: int32(state.CurrentEpisodeIndex),
		IsPlaying:    state.IsPlaying,
		IsLooping:    state.IsLooping,
		IsShuffling:  state.IsShuffling,
		HasNext:      state.HasNext(),
		HasPrevious:  state.HasPrevious(),
		Progress:     int32(progress),
		Duration:     int32(duration),
	}
	if ep, ok := state.Current(); ok {
		ps.Current = ToEpisode(ep)
		if ps.Duration == 0 {
			ps.Duration = int32(ep.Duration)
		}
	}
	return ps
}
