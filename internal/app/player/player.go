// Package player binds a media element to the playback store.
//
// The player issues every play/pause/load command to the element and feeds
// the element's events back into the store, or into the local progress it
// owns. Run serializes store changes and media events on one goroutine.
package player

import (
	"context"
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/app/playback"
	"github.com/osa030/podcastr/internal/infra/media"
)

// ErrNoEpisode is returned when an operation needs a selected episode.
var ErrNoEpisode = errors.New("no episode selected")

// Config holds player configuration.
type Config struct {
	Autoplay bool // Start a source as soon as it is loaded
}

// Player is the presentation binding between the store and a media element.
type Player struct {
	store   *playback.Store
	element media.Element
	config  Config

	mu         sync.RWMutex
	applied    playback.State // last store state applied to the element
	loaded     bool           // element holds a source
	loadedSeq  uint64         // EpisodeSeq of the loaded source
	generation uint64         // element generation of the loaded source
	accepting  bool           // metadata arrived; time updates are accepted
	commanded  bool           // playing state last requested from the element
	pending    bool           // element has not confirmed commanded yet
	progress   int            // seconds
	duration   int            // seconds, 0 if unknown

	changes chan struct{}
}

// New creates a player. Nothing happens until Run is called.
func New(store *playback.Store, element media.Element, config Config) *Player {
	return &Player{
		store:   store,
		element: element,
		config:  config,
		changes: make(chan struct{}, 1),
	}
}

// Run applies store changes to the element and element events to the store
// until ctx is cancelled or the element's event stream ends.
func (p *Player) Run(ctx context.Context) error {
	sub := p.store.Subscribe()
	defer sub.Close()

	p.sync(p.store.Snapshot())

	events := p.element.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-sub.Events():
			if !ok {
				zlog.Debug().Msg("player: store closed")
				return nil
			}
			// Events may have been dropped; always resync from the latest state.
			p.sync(p.store.Snapshot())
		case e, ok := <-events:
			if !ok {
				zlog.Debug().Msg("player: media element closed")
				return nil
			}
			p.handleMedia(e)
		}
	}
}

// sync commands the element so that it reflects state.
func (p *Player) sync(state playback.State) {
	p.mu.Lock()
	prev := p.applied
	p.applied = state

	switch {
	case state.IsEmpty():
		p.loadedSeq = state.EpisodeSeq
		if p.loaded {
			p.loaded = false
			p.accepting = false
			p.commanded = false
			p.pending = false
			p.progress = 0
			p.duration = 0
			p.mu.Unlock()

			if err := p.element.Unload(); err != nil {
				zlog.Warn().Msgf("player: failed to unload media: %v", err)
			}
			zlog.Debug().Msg("player: media unloaded")
			p.notifyChange()
			return
		}
		p.mu.Unlock()
		p.notifyChange()
		return

	case !p.loaded || state.EpisodeSeq != p.loadedSeq:
		ep, _ := state.Current()
		p.loadedSeq = state.EpisodeSeq
		p.accepting = false
		p.progress = 0
		p.duration = ep.Duration
		p.mu.Unlock()

		// A pause coalesced with the selection must not be undone by autoplay.
		autoplay := p.config.Autoplay && state.IsPlaying
		gen, err := p.element.Load(ep.URL, media.LoadOptions{
			Autoplay: autoplay,
			Loop:     state.IsLooping,
			Duration: ep.Duration,
		})
		p.mu.Lock()
		if err != nil {
			p.loaded = false
			p.mu.Unlock()
			zlog.Warn().Msgf("player: failed to load episode: title=%s url=%s: %v", ep.Title, ep.URL, err)
			p.notifyChange()
			return
		}
		p.loaded = true
		p.generation = gen
		p.commanded = autoplay
		p.pending = autoplay
		p.mu.Unlock()

		zlog.Info().Msgf("player: loaded episode: title=%s index=%d generation=%d", ep.Title, state.CurrentEpisodeIndex, gen)
		p.notifyChange()
		return
	}
	// Starting before metadata is left to the metadata handler.
	command := state.IsPlaying != p.commanded && (p.accepting || !state.IsPlaying)
	if command {
		p.commanded = state.IsPlaying
		p.pending = true
	}
	p.mu.Unlock()

	if command {
		var err error
		if state.IsPlaying {
			err = p.element.Play()
		} else {
			err = p.element.Pause()
		}
		if err != nil {
			zlog.Warn().Msgf("player: failed to set playing=%t: %v", state.IsPlaying, err)
		}
	}
	if state.IsLooping != prev.IsLooping {
		if err := p.element.SetLoop(state.IsLooping); err != nil {
			zlog.Warn().Msgf("player: failed to set loop=%t: %v", state.IsLooping, err)
		}
	}
	p.notifyChange()
}

// handleMedia reacts to an element event.
func (p *Player) handleMedia(e media.Event) {
	if e.Type == media.EventError {
		zlog.Warn().Msgf("player: media error: generation=%d: %v", e.Generation, e.Err)
		return
	}

	p.mu.Lock()
	if !p.loaded || e.Generation != p.generation {
		p.mu.Unlock()
		zlog.Debug().Msgf("player: dropped stale media event: type=%s generation=%d", e.Type, e.Generation)
		return
	}

	switch e.Type {
	case media.EventLoadedMetadata:
		p.accepting = true
		p.progress = 0
		if e.Duration > 0 {
			p.duration = int(e.Duration)
		}
		start := p.applied.IsPlaying && !p.commanded
		if start {
			p.commanded = true
			p.pending = true
		}
		p.mu.Unlock()

		if err := p.element.Seek(0); err != nil {
			zlog.Warn().Msgf("player: failed to rewind: %v", err)
		}
		if start {
			if err := p.element.Play(); err != nil {
				zlog.Warn().Msgf("player: failed to start playback: %v", err)
			}
		}
		p.notifyChange()

	case media.EventTimeUpdate:
		if !p.accepting {
			p.mu.Unlock()
			return
		}
		progress := int(math.Floor(e.Position))
		changed := progress != p.progress
		p.progress = progress
		if e.Duration > 0 {
			p.duration = int(e.Duration)
		}
		p.mu.Unlock()

		if changed {
			p.notifyChange()
		}

	case media.EventPlay, media.EventPause:
		// While a request is unconfirmed, events disagreeing with it are
		// echoes of requests overridden since and must not flip the store back.
		playing := e.Type == media.EventPlay
		stale := p.pending && playing != p.commanded
		if !stale {
			p.commanded = playing
			p.pending = false
		}
		p.mu.Unlock()

		if stale {
			zlog.Debug().Msgf("player: dropped overridden media event: type=%s", e.Type)
			return
		}
		p.store.SetPlayingState(playing)

	case media.EventEnded:
		p.mu.Unlock()
		if p.store.HasNext() {
			// Elements report a pause before ended; the queue keeps playing.
			zlog.Debug().Msg("player: episode ended, playing next")
			p.store.SetPlayingState(true)
			p.store.PlayNext()
			return
		}
		zlog.Debug().Msg("player: last episode ended, clearing queue")
		p.store.ClearPlayerState()

	default:
		p.mu.Unlock()
	}
}

// Seek moves playback of the current episode to seconds, clamped to
// [0, duration]. Progress reflects the new position immediately.
func (p *Player) Seek(seconds float64) error {
	ep, ok := p.store.Snapshot().Current()
	if !ok {
		return ErrNoEpisode
	}

	p.mu.Lock()
	duration := p.duration
	if duration <= 0 {
		duration = ep.Duration
	}
	if duration > 0 {
		seconds = min(seconds, float64(duration))
	}
	seconds = max(seconds, 0)
	p.progress = int(math.Floor(seconds))
	p.mu.Unlock()

	if err := p.element.Seek(seconds); err != nil {
		return errors.Wrapf(err, "failed to seek to %.0fs", seconds)
	}
	p.notifyChange()
	return nil
}

// SeekBy moves playback relative to the current progress.
func (p *Player) SeekBy(delta float64) error {
	return p.Seek(float64(p.Progress()) + delta)
}

// Progress returns the local playback progress in seconds.
func (p *Player) Progress() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.progress
}

// Duration returns the duration of the loaded source in seconds.
func (p *Player) Duration() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.duration
}

// View renders the current store state and local progress.
func (p *Player) View() View {
	state := p.store.Snapshot()
	p.mu.RLock()
	progress, duration := p.progress, p.duration
	p.mu.RUnlock()
	return Render(state, progress, duration)
}

// Changes fires whenever the view may have changed. Signals coalesce.
func (p *Player) Changes() <-chan struct{} {
	return p.changes
}

func (p *Player) notifyChange() {
	select {
	case p.changes <- struct{}{}:
	default:
	}
}
