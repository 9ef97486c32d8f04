package playback

import (
	"math/rand/v2"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/domain/episode"
)

// Errors
var (
	ErrEmptyQueue      = errors.New("episode list is empty")
	ErrIndexOutOfRange = errors.New("episode index out of range")
)

// IndexPolicy decides how PlayList treats an index outside the list.
type IndexPolicy string

const (
	IndexPolicyReject IndexPolicy = "reject" // Return ErrIndexOutOfRange, keep state
	IndexPolicyClamp  IndexPolicy = "clamp"  // Clamp into [0, len(list)-1]
)

// Config holds store configuration.
type Config struct {
	IndexPolicy        IndexPolicy
	ShuffleAvoidRepeat bool            // Exclude the current index when shuffling (queue length > 1)
	Rand               func(n int) int // Returns a value in [0, n); defaults to math/rand/v2
}

// Store is the single source of truth for the episode queue and transport flags.
type Store struct {
	mu sync.RWMutex

	state  State
	config Config

	subs   map[uint64]*Subscription
	nextID uint64
	closed bool
}

// NewStore creates an empty store: empty queue, index 0, all flags false.
func NewStore(config Config) *Store {
	if config.IndexPolicy == "" {
		config.IndexPolicy = IndexPolicyReject
	}
	if config.Rand == nil {
		config.Rand = rand.IntN
	}
	return &Store{
		state:  State{EpisodeList: make([]episode.Episode, 0)},
		config: config,
		subs:   make(map[uint64]*Subscription),
	}
}

// Play replaces the queue with a single episode and starts playing it.
func (s *Store) Play(ep episode.Episode) {
	s.mu.Lock()
	s.state.EpisodeList = []episode.Episode{ep}
	s.state.CurrentEpisodeIndex = 0
	s.state.IsPlaying = true
	s.state.EpisodeSeq++
	e := s.eventLocked(EventEpisodeChanged)
	s.mu.Unlock()

	zlog.Debug().Msgf("playback: play: title=%s", ep.Title)
	s.notify(e)
}

// PlayList replaces the queue with list and starts playing the episode at index.
// The index is validated according to the configured IndexPolicy.
func (s *Store) PlayList(list []episode.Episode, index int) error {
	if len(list) == 0 {
		return ErrEmptyQueue
	}
	if index < 0 || index >= len(list) {
		if s.config.IndexPolicy != IndexPolicyClamp {
			return errors.Wrapf(ErrIndexOutOfRange, "index %d, list length %d", index, len(list))
		}
		index = max(0, min(index, len(list)-1))
	}

	queue := make([]episode.Episode, len(list))
	copy(queue, list)

	s.mu.Lock()
	s.state.EpisodeList = queue
	s.state.CurrentEpisodeIndex = index
	s.state.IsPlaying = true
	s.state.EpisodeSeq++
	e := s.eventLocked(EventEpisodeChanged)
	s.mu.Unlock()

	zlog.Debug().Msgf("playback: play list: length=%d index=%d", len(queue), index)
	s.notify(e)
	return nil
}

// PlayNext selects the next episode. When shuffling it picks a random index,
// otherwise it advances by one if there is a next episode. No-op otherwise.
func (s *Store) PlayNext() {
	s.mu.Lock()
	n := len(s.state.EpisodeList)
	if n == 0 {
		s.mu.Unlock()
		return
	}

	switch {
	case s.state.IsShuffling:
		s.state.CurrentEpisodeIndex = s.shuffleIndexLocked(n)
	case s.state.HasNext():
		s.state.CurrentEpisodeIndex++
	default:
		s.mu.Unlock()
		return
	}
	s.state.EpisodeSeq++
	index := s.state.CurrentEpisodeIndex
	e := s.eventLocked(EventEpisodeChanged)
	s.mu.Unlock()

	zlog.Debug().Msgf("playback: next: index=%d", index)
	s.notify(e)
}

// shuffleIndexLocked picks a random index in [0, n).
// Must be called with lock held.
func (s *Store) shuffleIndexLocked(n int) int {
	if !s.config.ShuffleAvoidRepeat || n < 2 {
		return s.config.Rand(n)
	}
	// Draw from the n-1 other indexes.
	i := s.config.Rand(n - 1)
	if i >= s.state.CurrentEpisodeIndex {
		i++
	}
	return i
}

// PlayPrevious selects the previous episode if there is one.
func (s *Store) PlayPrevious() {
	s.mu.Lock()
	if !s.state.HasPrevious() {
		s.mu.Unlock()
		return
	}
	s.state.CurrentEpisodeIndex--
	s.state.EpisodeSeq++
	index := s.state.CurrentEpisodeIndex
	e := s.eventLocked(EventEpisodeChanged)
	s.mu.Unlock()

	zlog.Debug().Msgf("playback: previous: index=%d", index)
	s.notify(e)
}

// TogglePlay flips IsPlaying.
func (s *Store) TogglePlay() {
	s.mu.Lock()
	s.state.IsPlaying = !s.state.IsPlaying
	e := s.eventLocked(EventPlayingChanged)
	s.mu.Unlock()

	s.notify(e)
}

// ToggleLoop flips IsLooping.
func (s *Store) ToggleLoop() {
	s.mu.Lock()
	s.state.IsLooping = !s.state.IsLooping
	e := s.eventLocked(EventLoopingChanged)
	s.mu.Unlock()

	s.notify(e)
}

// ToggleShuffle flips IsShuffling.
func (s *Store) ToggleShuffle() {
	s.mu.Lock()
	s.state.IsShuffling = !s.state.IsShuffling
	e := s.eventLocked(EventShufflingChanged)
	s.mu.Unlock()

	s.notify(e)
}

// SetPlayingState sets IsPlaying directly. It is used to reconcile the store
// with play/pause events reported by the media element; setting the current
// value again emits nothing.
func (s *Store) SetPlayingState(playing bool) {
	s.mu.Lock()
	if s.state.IsPlaying == playing {
		s.mu.Unlock()
		return
	}
	s.state.IsPlaying = playing
	e := s.eventLocked(EventPlayingChanged)
	s.mu.Unlock()

	s.notify(e)
}

// ClearPlayerState empties the queue and resets the index to 0.
func (s *Store) ClearPlayerState() {
	s.mu.Lock()
	s.state.EpisodeList = make([]episode.Episode, 0)
	s.state.CurrentEpisodeIndex = 0
	s.state.EpisodeSeq++
	e := s.eventLocked(EventQueueCleared)
	s.mu.Unlock()

	zlog.Debug().Msg("playback: queue cleared")
	s.notify(e)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// HasNext reports whether PlayNext would select an episode.
func (s *Store) HasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.HasNext()
}

// HasPrevious reports whether PlayPrevious would select an episode.
func (s *Store) HasPrevious() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.HasPrevious()
}

// Subscribe registers an observer. Every subsequent mutation is delivered on
// the returned subscription until it is closed.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	sub := &Subscription{
		ch:    make(chan Event, subscriptionBufferSize),
		store: s,
		id:    s.nextID,
	}
	if s.closed {
		sub.close()
		return sub
	}
	s.subs[sub.id] = sub
	return sub
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	sub, ok := s.subs[id]
	delete(s.subs, id)
	s.mu.Unlock()

	if ok {
		sub.close()
	}
}

// Close ends every subscription. The store keeps answering Snapshot.
func (s *Store) Close() {
	s.mu.Lock()
	subs := s.subs
	s.subs = make(map[uint64]*Subscription)
	s.closed = true
	s.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

// eventLocked builds an event carrying a copy of the current state.
// Must be called with lock held.
func (s *Store) eventLocked(t EventType) Event {
	return Event{Type: t, State: s.state.clone()}
}

// notify delivers e to every subscriber. Must be called without the lock held.
func (s *Store) notify(e Event) {
	s.mu.RLock()
	subs := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.send(e)
	}
}
