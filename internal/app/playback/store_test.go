package playback

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/podcastr/internal/domain/episode"
)

func testEpisodes(n int) []episode.Episode {
	eps := make([]episode.Episode, n)
	for i := range eps {
		eps[i] = episode.Episode{
			Title:    "E" + string(rune('1'+i)),
			Members:  "host",
			Duration: 180,
			URL:      "https://example.com/e" + string(rune('1'+i)) + ".mp3",
		}
	}
	return eps
}

// fixedRand returns a Rand func that yields values from seq in order.
func fixedRand(seq ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := seq[i%len(seq)] % n
		i++
		return v
	}
}

func assertIndexInvariant(t *testing.T, s State) {
	t.Helper()
	if len(s.EpisodeList) > 0 {
		assert.GreaterOrEqual(t, s.CurrentEpisodeIndex, 0)
		assert.Less(t, s.CurrentEpisodeIndex, len(s.EpisodeList))
	}
	assert.Equal(t, s.CurrentEpisodeIndex > 0, s.HasPrevious())
	assert.Equal(t, s.IsShuffling || s.CurrentEpisodeIndex+1 < len(s.EpisodeList), s.HasNext())
}

func TestNewStore_InitialState(t *testing.T) {
	s := NewStore(Config{})
	state := s.Snapshot()

	assert.Empty(t, state.EpisodeList)
	assert.Equal(t, 0, state.CurrentEpisodeIndex)
	assert.False(t, state.IsPlaying)
	assert.False(t, state.IsLooping)
	assert.False(t, state.IsShuffling)
	assert.Equal(t, StatusIdle, state.Status())

	_, ok := state.Current()
	assert.False(t, ok, "empty queue has no current episode")
}

func TestStore_Play(t *testing.T) {
	eps := testEpisodes(3)
	s := NewStore(Config{})
	require.NoError(t, s.PlayList(eps, 2))
	s.ToggleShuffle()

	s.Play(eps[0])

	state := s.Snapshot()
	assert.Equal(t, []episode.Episode{eps[0]}, state.EpisodeList)
	assert.Equal(t, 0, state.CurrentEpisodeIndex)
	assert.True(t, state.IsPlaying)
	assert.True(t, state.IsShuffling, "flags other than IsPlaying are untouched")
	assertIndexInvariant(t, state)
}

func TestStore_PlayList(t *testing.T) {
	eps := testEpisodes(3)

	tests := []struct {
		name      string
		policy    IndexPolicy
		list      []episode.Episode
		index     int
		wantErr   error
		wantIndex int
	}{
		{name: "first", policy: IndexPolicyReject, list: eps, index: 0, wantIndex: 0},
		{name: "last", policy: IndexPolicyReject, list: eps, index: 2, wantIndex: 2},
		{name: "reject too large", policy: IndexPolicyReject, list: eps, index: 3, wantErr: ErrIndexOutOfRange},
		{name: "reject negative", policy: IndexPolicyReject, list: eps, index: -1, wantErr: ErrIndexOutOfRange},
		{name: "clamp too large", policy: IndexPolicyClamp, list: eps, index: 7, wantIndex: 2},
		{name: "clamp negative", policy: IndexPolicyClamp, list: eps, index: -4, wantIndex: 0},
		{name: "empty list rejected", policy: IndexPolicyReject, list: nil, index: 0, wantErr: ErrEmptyQueue},
		{name: "empty list rejected under clamp", policy: IndexPolicyClamp, list: nil, index: 0, wantErr: ErrEmptyQueue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(Config{IndexPolicy: tt.policy})
			before := s.Snapshot()

			err := s.PlayList(tt.list, tt.index)
			state := s.Snapshot()

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, before, state, "rejected call leaves state untouched")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.list, state.EpisodeList)
			assert.Equal(t, tt.wantIndex, state.CurrentEpisodeIndex)
			assert.True(t, state.IsPlaying)
			assertIndexInvariant(t, state)
		})
	}
}

func TestStore_PlayList_CopiesInput(t *testing.T) {
	eps := testEpisodes(2)
	s := NewStore(Config{})
	require.NoError(t, s.PlayList(eps, 0))

	eps[0].Title = "mutated"

	state := s.Snapshot()
	assert.Equal(t, "E1", state.EpisodeList[0].Title)
}

func TestStore_PlayNext(t *testing.T) {
	t.Run("single episode is a no-op", func(t *testing.T) {
		s := NewStore(Config{})
		s.Play(testEpisodes(1)[0])
		seq := s.Snapshot().EpisodeSeq

		s.PlayNext()

		state := s.Snapshot()
		assert.Equal(t, 0, state.CurrentEpisodeIndex)
		assert.False(t, state.HasNext())
		assert.Equal(t, seq, state.EpisodeSeq)
	})

	t.Run("advances by one", func(t *testing.T) {
		s := NewStore(Config{})
		require.NoError(t, s.PlayList(testEpisodes(3), 0))

		s.PlayNext()

		state := s.Snapshot()
		assert.Equal(t, 1, state.CurrentEpisodeIndex)
		assertIndexInvariant(t, state)
	})

	t.Run("stops at the end", func(t *testing.T) {
		s := NewStore(Config{})
		require.NoError(t, s.PlayList(testEpisodes(3), 1))

		s.PlayNext()
		s.PlayNext()

		assert.Equal(t, 2, s.Snapshot().CurrentEpisodeIndex)
	})

	t.Run("empty queue is a no-op", func(t *testing.T) {
		s := NewStore(Config{})
		s.ToggleShuffle()

		s.PlayNext()

		state := s.Snapshot()
		assert.Equal(t, 0, state.CurrentEpisodeIndex)
		assert.Empty(t, state.EpisodeList)
	})
}

func TestStore_PlayNext_Shuffle(t *testing.T) {
	t.Run("uses random index and may repeat", func(t *testing.T) {
		s := NewStore(Config{Rand: fixedRand(2, 2, 0)})
		require.NoError(t, s.PlayList(testEpisodes(3), 2))
		s.ToggleShuffle()

		s.PlayNext()
		assert.Equal(t, 2, s.Snapshot().CurrentEpisodeIndex, "current index may be drawn again")

		s.PlayNext()
		assert.Equal(t, 2, s.Snapshot().CurrentEpisodeIndex)

		s.PlayNext()
		assert.Equal(t, 0, s.Snapshot().CurrentEpisodeIndex)
	})

	t.Run("repeat still reselects the episode", func(t *testing.T) {
		s := NewStore(Config{Rand: fixedRand(0)})
		require.NoError(t, s.PlayList(testEpisodes(2), 0))
		s.ToggleShuffle()
		seq := s.Snapshot().EpisodeSeq

		s.PlayNext()

		assert.Equal(t, seq+1, s.Snapshot().EpisodeSeq)
	})

	t.Run("avoid repeat skips current index", func(t *testing.T) {
		s := NewStore(Config{ShuffleAvoidRepeat: true, Rand: fixedRand(1, 0, 1)})
		require.NoError(t, s.PlayList(testEpisodes(3), 1))
		s.ToggleShuffle()

		s.PlayNext() // draws 1 from {0,2} -> 2
		assert.Equal(t, 2, s.Snapshot().CurrentEpisodeIndex)

		s.PlayNext() // draws 0 from {0,1} -> 0
		assert.Equal(t, 0, s.Snapshot().CurrentEpisodeIndex)

		s.PlayNext() // draws 1 from {1,2} -> 2
		assert.Equal(t, 2, s.Snapshot().CurrentEpisodeIndex)
	})

	t.Run("avoid repeat with single episode", func(t *testing.T) {
		s := NewStore(Config{ShuffleAvoidRepeat: true})
		s.Play(testEpisodes(1)[0])
		s.ToggleShuffle()

		s.PlayNext()

		assert.Equal(t, 0, s.Snapshot().CurrentEpisodeIndex)
	})

	t.Run("index stays in range", func(t *testing.T) {
		s := NewStore(Config{})
		require.NoError(t, s.PlayList(testEpisodes(5), 0))
		s.ToggleShuffle()

		for i := 0; i < 200; i++ {
			s.PlayNext()
			assertIndexInvariant(t, s.Snapshot())
		}
	})
}

func TestStore_PlayPrevious(t *testing.T) {
	s := NewStore(Config{})
	require.NoError(t, s.PlayList(testEpisodes(2), 1))

	s.PlayPrevious()
	assert.Equal(t, 0, s.Snapshot().CurrentEpisodeIndex)

	s.PlayPrevious()
	assert.Equal(t, 0, s.Snapshot().CurrentEpisodeIndex)
	assert.False(t, s.HasPrevious())
}

func TestStore_Toggles(t *testing.T) {
	s := NewStore(Config{})

	s.TogglePlay()
	assert.True(t, s.Snapshot().IsPlaying)
	s.TogglePlay()
	assert.False(t, s.Snapshot().IsPlaying, "togglePlay twice restores the flag")

	s.ToggleLoop()
	assert.True(t, s.Snapshot().IsLooping)
	s.ToggleLoop()
	assert.False(t, s.Snapshot().IsLooping)

	s.ToggleShuffle()
	assert.True(t, s.Snapshot().IsShuffling)
	assert.True(t, s.HasNext(), "shuffling always has a next episode")
	s.ToggleShuffle()
	assert.False(t, s.Snapshot().IsShuffling)
}

func TestStore_SetPlayingState(t *testing.T) {
	s := NewStore(Config{})
	sub := s.Subscribe()
	defer sub.Close()

	s.SetPlayingState(false)
	assert.Len(t, sub.Events(), 0, "unchanged value emits nothing")

	s.SetPlayingState(true)
	require.Len(t, sub.Events(), 1)
	e := <-sub.Events()
	assert.Equal(t, EventPlayingChanged, e.Type)
	assert.True(t, e.State.IsPlaying)
}

func TestStore_ClearPlayerState(t *testing.T) {
	s := NewStore(Config{})
	require.NoError(t, s.PlayList(testEpisodes(3), 2))
	s.ToggleLoop()

	s.ClearPlayerState()

	state := s.Snapshot()
	assert.Empty(t, state.EpisodeList)
	assert.Equal(t, 0, state.CurrentEpisodeIndex)
	assert.True(t, state.IsLooping)
	assert.Equal(t, StatusIdle, state.Status())
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(Config{})
	sub := s.Subscribe()

	eps := testEpisodes(2)
	require.NoError(t, s.PlayList(eps, 0))
	s.PlayNext()
	s.ToggleLoop()
	s.ClearPlayerState()

	var types []EventType
	for i := 0; i < 4; i++ {
		e := <-sub.Events()
		types = append(types, e.Type)
	}
	assert.Equal(t, []EventType{
		EventEpisodeChanged,
		EventEpisodeChanged,
		EventLoopingChanged,
		EventQueueCleared,
	}, types)

	sub.Close()
	s.TogglePlay()
	_, ok := <-sub.Events()
	assert.False(t, ok, "closed subscription channel is closed")
}

func TestStore_Close(t *testing.T) {
	s := NewStore(Config{})
	sub := s.Subscribe()

	s.Close()

	_, ok := <-sub.Events()
	assert.False(t, ok)

	late := s.Subscribe()
	_, ok = <-late.Events()
	assert.False(t, ok, "subscribing to a closed store yields a closed subscription")
	late.Close()

	s.TogglePlay()
	assert.True(t, s.Snapshot().IsPlaying, "store keeps working after Close")
}

func TestStore_EventStateIsACopy(t *testing.T) {
	s := NewStore(Config{})
	sub := s.Subscribe()
	defer sub.Close()

	require.NoError(t, s.PlayList(testEpisodes(2), 0))
	e := <-sub.Events()
	e.State.EpisodeList[0].Title = "mutated"

	assert.Equal(t, "E1", s.Snapshot().EpisodeList[0].Title)
}
