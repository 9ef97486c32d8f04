package playback

import "sync"

// EventType represents a playback event type.
type EventType int

const (
	EventEpisodeChanged   EventType = iota // Queue or current index changed
	EventPlayingChanged                    // IsPlaying flipped
	EventLoopingChanged                    // IsLooping flipped
	EventShufflingChanged                  // IsShuffling flipped
	EventQueueCleared                      // Queue emptied
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventEpisodeChanged:
		return "episode_changed"
	case EventPlayingChanged:
		return "playing_changed"
	case EventLoopingChanged:
		return "looping_changed"
	case EventShufflingChanged:
		return "shuffling_changed"
	case EventQueueCleared:
		return "queue_cleared"
	default:
		return "unknown"
	}
}

// Event represents a playback state change.
type Event struct {
	Type  EventType
	State State // State right after the change
}

const subscriptionBufferSize = 32

// Subscription receives store events until closed.
// Sends are non-blocking; a slow consumer should resync from Store.Snapshot.
type Subscription struct {
	mu     sync.Mutex
	ch     chan Event
	store  *Store
	id     uint64
	closed bool
}

// Events returns the event channel. It is closed when the subscription ends.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close unregisters the subscription.
func (s *Subscription) Close() {
	s.store.unsubscribe(s.id)
}

func (s *Subscription) send(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- e:
	default:
		// Buffer full, drop; the next event carries the latest state.
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
