package media

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

// MPVConfig configures the mpv backend.
type MPVConfig struct {
	Path           string   // mpv binary
	Socket         string   // JSON IPC socket path
	ExtraArgs      []string // Additional mpv arguments
	StartTimeoutMs int      // How long to wait for the IPC socket
}

// observed property ids
const (
	propTimePos = iota + 1
	propPause
	propDuration
)

// ipcMessage is either an mpv event or a command reply.
type ipcMessage struct {
	Event     string          `json:"event"`
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	Reason    string          `json:"reason"`
	RequestID int64           `json:"request_id"`
	Error     string          `json:"error"`
}

type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// MPV drives an idle mpv process over its JSON IPC socket.
type MPV struct {
	mu sync.Mutex

	cmd  *exec.Cmd
	conn net.Conn

	wmu       sync.Mutex
	requestID int64

	generation    uint64
	pendingStarts int // loadfile commands whose start-file has not arrived
	loaded        bool
	paused        bool
	position      float64
	duration      float64
	durationHint  float64

	queue  *eventQueue
	closed bool
}

// NewMPV starts mpv in idle mode and connects to its IPC socket.
func NewMPV(cfg MPVConfig) (*MPV, error) {
	path := cfg.Path
	if path == "" {
		path = "mpv"
	}
	socket := cfg.Socket
	if socket == "" {
		socket = filepath.Join(os.TempDir(), fmt.Sprintf("podcastr-mpv-%d.sock", os.Getpid()))
	}
	timeout := time.Duration(cfg.StartTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	_ = os.Remove(socket)
	args := append([]string{
		"--idle=yes",
		"--no-video",
		"--no-terminal",
		"--input-ipc-server=" + socket,
	}, cfg.ExtraArgs...)

	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to start %s", path)
	}
	zlog.Info().Msgf("media: started mpv: pid=%d socket=%s", cmd.Process.Pid, socket)

	conn, err := dialSocket(socket, timeout)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, errors.Wrap(err, "failed to connect to mpv IPC socket")
	}

	m := newMPVConn(conn)
	m.cmd = cmd
	return m, nil
}

// dialSocket retries until mpv has created its socket.
func dialSocket(path string, timeout time.Duration) (net.Conn, error) {
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.DialTimeout("unix", path, time.Second)
		if err == nil {
			return conn, nil
		}
		if time.Now().After(deadline) {
			return nil, err
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// newMPVConn wraps an established IPC connection and starts reading events.
func newMPVConn(conn net.Conn) *MPV {
	m := &MPV{
		conn:   conn,
		paused: true,
		queue:  newEventQueue(),
	}
	go m.readLoop()

	for _, p := range []struct {
		id   int
		name string
	}{
		{propTimePos, "time-pos"},
		{propPause, "pause"},
		{propDuration, "duration"},
	} {
		if err := m.send("observe_property", p.id, p.name); err != nil {
			zlog.Warn().Msgf("media: failed to observe mpv property %s: %v", p.name, err)
		}
	}
	return m
}

// Load replaces the current source.
func (m *MPV) Load(src string, opts LoadOptions) (uint64, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return 0, ErrClosed
	}
	m.generation++
	m.pendingStarts++
	m.loaded = true
	m.position = 0
	m.duration = 0
	m.durationHint = float64(opts.Duration)
	gen := m.generation
	m.mu.Unlock()

	if err := m.send("set_property", "pause", !opts.Autoplay); err != nil {
		return gen, err
	}
	if err := m.SetLoop(opts.Loop); err != nil {
		return gen, err
	}
	if err := m.send("loadfile", src, "replace"); err != nil {
		return gen, err
	}
	zlog.Debug().Msgf("media: mpv loading: src=%s generation=%d", src, gen)
	return gen, nil
}

// Unload stops playback and drops the source.
func (m *MPV) Unload() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.generation++
	m.loaded = false
	m.position = 0
	m.mu.Unlock()

	return m.send("stop")
}

// Play resumes playback.
func (m *MPV) Play() error {
	if err := m.check(); err != nil {
		return err
	}
	return m.send("set_property", "pause", false)
}

// Pause pauses playback.
func (m *MPV) Pause() error {
	if err := m.check(); err != nil {
		return err
	}
	return m.send("set_property", "pause", true)
}

// Seek jumps to an absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	if err := m.check(); err != nil {
		return err
	}
	return m.send("seek", seconds, "absolute")
}

// SetLoop sets mpv's loop-file property.
func (m *MPV) SetLoop(loop bool) error {
	value := "no"
	if loop {
		value = "inf"
	}
	return m.send("set_property", "loop-file", value)
}

// Events returns the event stream. It is closed by Close.
func (m *MPV) Events() <-chan Event {
	return m.queue.out
}

// Close quits mpv and closes the event stream.
func (m *MPV) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.mu.Unlock()

	_ = m.send("quit")
	err := m.conn.Close()
	m.queue.close()

	if m.cmd != nil {
		done := make(chan struct{})
		go func() {
			_ = m.cmd.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			_ = m.cmd.Process.Kill()
			<-done
		}
	}
	return err
}

func (m *MPV) check() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if !m.loaded {
		return ErrNoSource
	}
	return nil
}

// send writes one IPC command.
func (m *MPV) send(args ...any) error {
	m.wmu.Lock()
	defer m.wmu.Unlock()

	m.requestID++
	data, err := json.Marshal(ipcCommand{Command: args, RequestID: m.requestID})
	if err != nil {
		return errors.Wrap(err, "failed to encode mpv command")
	}
	data = append(data, '\n')
	if _, err := m.conn.Write(data); err != nil {
		return errors.Wrapf(err, "failed to send mpv command %v", args[0])
	}
	return nil
}

// readLoop translates IPC messages into element events until the connection closes.
func (m *MPV) readLoop() {
	scanner := bufio.NewScanner(m.conn)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			zlog.Warn().Msgf("media: invalid mpv message: %v", err)
			continue
		}
		m.queue.push(m.handle(msg)...)
	}
	if err := scanner.Err(); err != nil {
		m.mu.Lock()
		closed := m.closed
		m.mu.Unlock()
		if !closed {
			zlog.Warn().Msgf("media: mpv connection lost: %v", err)
			m.queue.push(Event{Type: EventError, Err: errors.Wrap(err, "mpv connection lost")})
		}
	}
}

// handle updates the mirrored player state and returns the events to emit.
func (m *MPV) handle(msg ipcMessage) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg.Event == "" {
		if msg.Error != "" && msg.Error != "success" {
			zlog.Debug().Msgf("media: mpv command failed: request_id=%d error=%s", msg.RequestID, msg.Error)
		}
		return nil
	}

	switch msg.Event {
	case "start-file":
		if m.pendingStarts > 0 {
			m.pendingStarts--
		}
		return nil

	case "file-loaded":
		if m.pendingStarts > 0 || !m.loaded {
			return nil
		}
		events := []Event{m.eventLocked(EventLoadedMetadata)}
		if !m.paused {
			events = append(events, m.eventLocked(EventPlay))
		}
		return events

	case "end-file":
		if m.pendingStarts > 0 || !m.loaded {
			return nil
		}
		switch msg.Reason {
		case "eof":
			m.paused = true
			return []Event{m.eventLocked(EventPause), m.eventLocked(EventEnded)}
		case "error":
			return []Event{{
				Type:       EventError,
				Generation: m.generation,
				Err:        errors.New("mpv failed to play the source"),
			}}
		}
		return nil

	case "property-change":
		return m.propertyChangeLocked(msg)
	}
	return nil
}

// propertyChangeLocked handles an observed property update.
// Must be called with lock held.
func (m *MPV) propertyChangeLocked(msg ipcMessage) []Event {
	switch msg.ID {
	case propTimePos:
		var pos *float64
		if err := json.Unmarshal(msg.Data, &pos); err != nil || pos == nil {
			return nil
		}
		m.position = *pos
		if m.pendingStarts > 0 || !m.loaded {
			return nil
		}
		return []Event{m.eventLocked(EventTimeUpdate)}

	case propDuration:
		var d *float64
		if err := json.Unmarshal(msg.Data, &d); err != nil || d == nil {
			return nil
		}
		m.duration = *d
		return nil

	case propPause:
		var paused bool
		if err := json.Unmarshal(msg.Data, &paused); err != nil {
			return nil
		}
		changed := paused != m.paused
		m.paused = paused
		if !changed || m.pendingStarts > 0 || !m.loaded {
			return nil
		}
		if paused {
			return []Event{m.eventLocked(EventPause)}
		}
		return []Event{m.eventLocked(EventPlay)}
	}
	return nil
}

// eventLocked builds an event for the current source.
// Must be called with lock held.
func (m *MPV) eventLocked(t EventType) Event {
	duration := m.duration
	if duration <= 0 {
		duration = m.durationHint
	}
	return Event{
		Type:       t,
		Generation: m.generation,
		Position:   m.position,
		Duration:   duration,
	}
}
