package media

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, el Element) Event {
	t.Helper()
	select {
	case e, ok := <-el.Events():
		require.True(t, ok, "event stream closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for media event")
		return Event{}
	}
}

func TestClock_LoadAutoplay(t *testing.T) {
	c := newClock(0)
	defer c.Close()

	gen, err := c.Load("https://example.com/a.mp3", LoadOptions{Autoplay: true, Duration: 180})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), gen)

	e := nextEvent(t, c)
	assert.Equal(t, EventLoadedMetadata, e.Type)
	assert.Equal(t, gen, e.Generation)
	assert.Equal(t, 180.0, e.Duration)

	e = nextEvent(t, c)
	assert.Equal(t, EventPlay, e.Type)
}

func TestClock_AdvanceAndEnd(t *testing.T) {
	c := newClock(0)
	defer c.Close()

	_, err := c.Load("https://example.com/a.mp3", LoadOptions{Duration: 2})
	require.NoError(t, err)
	assert.Equal(t, EventLoadedMetadata, nextEvent(t, c).Type)

	c.advance(time.Second)
	// Not playing yet, nothing happens.

	require.NoError(t, c.Play())
	assert.Equal(t, EventPlay, nextEvent(t, c).Type)

	c.advance(1500 * time.Millisecond)
	e := nextEvent(t, c)
	assert.Equal(t, EventTimeUpdate, e.Type)
	assert.InDelta(t, 1.5, e.Position, 0.001)

	c.advance(time.Second)
	e = nextEvent(t, c)
	assert.Equal(t, EventTimeUpdate, e.Type)
	assert.InDelta(t, 2.0, e.Position, 0.001)
	assert.Equal(t, EventPause, nextEvent(t, c).Type)
	assert.Equal(t, EventEnded, nextEvent(t, c).Type)

	// Playing an ended source restarts it.
	require.NoError(t, c.Play())
	e = nextEvent(t, c)
	assert.Equal(t, EventPlay, e.Type)
	assert.Equal(t, 0.0, e.Position)
}

func TestClock_Loop(t *testing.T) {
	c := newClock(0)
	defer c.Close()

	_, err := c.Load("https://example.com/a.mp3", LoadOptions{Autoplay: true, Loop: true, Duration: 2})
	require.NoError(t, err)
	nextEvent(t, c)
	nextEvent(t, c)

	c.advance(2500 * time.Millisecond)
	e := nextEvent(t, c)
	assert.Equal(t, EventTimeUpdate, e.Type)
	assert.InDelta(t, 0.5, e.Position, 0.001, "looping wraps around instead of ending")

	require.NoError(t, c.SetLoop(false))
	c.advance(2 * time.Second)
	assert.Equal(t, EventTimeUpdate, nextEvent(t, c).Type)
	assert.Equal(t, EventPause, nextEvent(t, c).Type)
	assert.Equal(t, EventEnded, nextEvent(t, c).Type)
}

func TestClock_PauseAndSeek(t *testing.T) {
	c := newClock(0)
	defer c.Close()

	_, err := c.Load("https://example.com/a.mp3", LoadOptions{Autoplay: true, Duration: 180})
	require.NoError(t, err)
	nextEvent(t, c)
	nextEvent(t, c)

	require.NoError(t, c.Play(), "play while playing is a no-op")
	require.NoError(t, c.Pause())
	assert.Equal(t, EventPause, nextEvent(t, c).Type)
	require.NoError(t, c.Pause(), "pause while paused is a no-op")

	require.NoError(t, c.Seek(45))
	e := nextEvent(t, c)
	assert.Equal(t, EventTimeUpdate, e.Type)
	assert.Equal(t, 45.0, e.Position)

	require.NoError(t, c.Seek(500))
	assert.Equal(t, 180.0, nextEvent(t, c).Position, "seek clamps to duration")

	require.NoError(t, c.Seek(-3))
	assert.Equal(t, 0.0, nextEvent(t, c).Position)
}

func TestClock_NoSource(t *testing.T) {
	c := newClock(0)
	defer c.Close()

	assert.True(t, errors.Is(c.Play(), ErrNoSource))
	assert.True(t, errors.Is(c.Pause(), ErrNoSource))
	assert.True(t, errors.Is(c.Seek(1), ErrNoSource))
	assert.NoError(t, c.SetLoop(true))

	_, err := c.Load("https://example.com/a.mp3", LoadOptions{Duration: 10})
	require.NoError(t, err)
	nextEvent(t, c)

	require.NoError(t, c.Unload())
	assert.True(t, errors.Is(c.Play(), ErrNoSource))
}

func TestClock_GenerationIncrements(t *testing.T) {
	c := newClock(0)
	defer c.Close()

	g1, err := c.Load("a", LoadOptions{})
	require.NoError(t, err)
	require.NoError(t, c.Unload())
	g2, err := c.Load("b", LoadOptions{})
	require.NoError(t, err)

	assert.Greater(t, g2, g1+1, "unload also supersedes the generation")
}

func TestClock_Close(t *testing.T) {
	c := newClock(0)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.Load("a", LoadOptions{})
	assert.True(t, errors.Is(err, ErrClosed))

	select {
	case _, ok := <-c.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("event stream not closed")
	}
}

func TestClock_Ticker(t *testing.T) {
	c := NewClock(ClockConfig{IntervalMs: 10})
	defer c.Close()

	_, err := c.Load("a", LoadOptions{Autoplay: true, Duration: 60})
	require.NoError(t, err)
	nextEvent(t, c)
	nextEvent(t, c)

	e := nextEvent(t, c)
	assert.Equal(t, EventTimeUpdate, e.Type)
	assert.Greater(t, e.Position, 0.0)
}

func TestNew(t *testing.T) {
	el, err := New(Config{Backend: "clock"})
	require.NoError(t, err)
	assert.IsType(t, &Clock{}, el)
	require.NoError(t, el.Close())

	_, err = New(Config{Backend: "vlc"})
	assert.Error(t, err)
}
