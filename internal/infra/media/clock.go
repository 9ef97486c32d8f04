package media

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"
)

const defaultTimeUpdateInterval = 250 * time.Millisecond

// ClockConfig configures the simulated element.
type ClockConfig struct {
	IntervalMs int // Milliseconds between time updates; 0 selects 250ms
}

// Clock is a simulated element. It plays nothing; a wall-clock ticker
// advances the position of the loaded source and reports time updates,
// looping and the end of the source like a real player would.
type Clock struct {
	mu sync.Mutex

	src        string
	generation uint64
	loaded     bool
	playing    bool
	loop       bool
	position   time.Duration
	duration   time.Duration

	queue  *eventQueue
	cancel context.CancelFunc
	closed bool
}

// NewClock creates a simulated element driven by a wall-clock ticker.
func NewClock(cfg ClockConfig) *Clock {
	interval := time.Duration(cfg.IntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultTimeUpdateInterval
	}
	return newClock(interval)
}

// newClock creates a clock element. A non-positive interval starts no
// ticker; time then only moves through advance.
func newClock(interval time.Duration) *Clock {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Clock{
		queue:  newEventQueue(),
		cancel: cancel,
	}
	if interval > 0 {
		go c.runTicker(ctx, interval)
	}
	return c
}

// runTicker advances the position by the wall-clock time elapsed between ticks.
func (c *Clock) runTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := toWallTime(time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			now = toWallTime(now)
			c.advance(now.Sub(last))
			last = now
		}
	}
}

// advance moves a playing source forward by d.
func (c *Clock) advance(d time.Duration) {
	c.mu.Lock()
	if !c.loaded || !c.playing || c.closed {
		c.mu.Unlock()
		return
	}

	c.position += d
	var events []Event
	if c.duration > 0 && c.position >= c.duration {
		if c.loop {
			c.position -= c.duration
			events = append(events, c.eventLocked(EventTimeUpdate))
		} else {
			c.position = c.duration
			c.playing = false
			events = append(events,
				c.eventLocked(EventTimeUpdate),
				c.eventLocked(EventPause),
				c.eventLocked(EventEnded),
			)
			zlog.Debug().Msgf("media: clock source ended: src=%s duration=%v", c.src, c.duration)
		}
	} else {
		events = append(events, c.eventLocked(EventTimeUpdate))
	}
	c.mu.Unlock()

	c.queue.push(events...)
}

// Load replaces the current source.
func (c *Clock) Load(src string, opts LoadOptions) (uint64, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0, ErrClosed
	}
	c.generation++
	c.src = src
	c.loaded = true
	c.playing = false
	c.loop = opts.Loop
	c.position = 0
	c.duration = time.Duration(opts.Duration) * time.Second

	events := []Event{c.eventLocked(EventLoadedMetadata)}
	if opts.Autoplay {
		c.playing = true
		events = append(events, c.eventLocked(EventPlay))
	}
	gen := c.generation
	c.mu.Unlock()

	zlog.Debug().Msgf("media: clock loaded: src=%s generation=%d", src, gen)
	c.queue.push(events...)
	return gen, nil
}

// Unload drops the current source. Pending events of the old source become stale.
func (c *Clock) Unload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.generation++
	c.src = ""
	c.loaded = false
	c.playing = false
	c.position = 0
	c.duration = 0
	return nil
}

// Play starts or resumes playback. Playing an ended source restarts it.
func (c *Clock) Play() error {
	c.mu.Lock()
	if err := c.checkLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.playing {
		c.mu.Unlock()
		return nil
	}
	if c.duration > 0 && c.position >= c.duration {
		c.position = 0
	}
	c.playing = true
	e := c.eventLocked(EventPlay)
	c.mu.Unlock()

	c.queue.push(e)
	return nil
}

// Pause pauses playback.
func (c *Clock) Pause() error {
	c.mu.Lock()
	if err := c.checkLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if !c.playing {
		c.mu.Unlock()
		return nil
	}
	c.playing = false
	e := c.eventLocked(EventPause)
	c.mu.Unlock()

	c.queue.push(e)
	return nil
}

// Seek sets the position, clamped to the source duration.
func (c *Clock) Seek(seconds float64) error {
	c.mu.Lock()
	if err := c.checkLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	pos := time.Duration(seconds * float64(time.Second))
	if pos < 0 {
		pos = 0
	}
	if c.duration > 0 && pos > c.duration {
		pos = c.duration
	}
	c.position = pos
	e := c.eventLocked(EventTimeUpdate)
	c.mu.Unlock()

	c.queue.push(e)
	return nil
}

// SetLoop sets whether the source repeats instead of ending.
func (c *Clock) SetLoop(loop bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.loop = loop
	return nil
}

// Events returns the event stream. It is closed by Close.
func (c *Clock) Events() <-chan Event {
	return c.queue.out
}

// Close stops the ticker and closes the event stream.
func (c *Clock) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.queue.close()
	return nil
}

func (c *Clock) checkLocked() error {
	if c.closed {
		return ErrClosed
	}
	if !c.loaded {
		return ErrNoSource
	}
	return nil
}

// eventLocked builds an event for the current source.
// Must be called with lock held.
func (c *Clock) eventLocked(t EventType) Event {
	return Event{
		Type:       t,
		Generation: c.generation,
		Position:   c.position.Seconds(),
		Duration:   c.duration.Seconds(),
	}
}

// toWallTime returns the time with monotonic clock stripped.
func toWallTime(t time.Time) time.Time {
	return time.Unix(t.Unix(), int64(t.Nanosecond()))
}
