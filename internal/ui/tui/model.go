// Package tui provides the terminal player: the catalog list, the player
// panel and its transport controls.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/app/notification"
	"github.com/osa030/podcastr/internal/app/playback"
	"github.com/osa030/podcastr/internal/app/player"
	"github.com/osa030/podcastr/internal/domain/playlist"
	podcastrv1 "github.com/osa030/podcastr/internal/gen/podcastr/v1"
)

const (
	seekStep         = 10 // seconds
	playerPanelLines = 5
)

// Session is the part of the session manager the TUI drives.
type Session interface {
	Catalog() playlist.Playlist
	PlayEpisode(index int) error
	PlayCatalog(index int) error
	Store() *playback.Store
	Player() *player.Player
	GetNotificationManager() *notification.Manager
	Done() <-chan struct{}
}

type (
	updateMsg       struct{}
	sessionEndedMsg struct{}
)

// updateStream turns notifications into coalesced redraw signals.
type updateStream struct {
	ch chan struct{}
}

func (s updateStream) Send(*podcastrv1.Notification) error {
	select {
	case s.ch <- struct{}{}:
	default:
	}
	return nil
}

// Model is the bubbletea model of the terminal player.
type Model struct {
	session Session
	keys    keyMap

	listC     list.Model
	progressC progress.Model
	helpC     help.Model

	view    player.View
	status  string // last rejected action
	updates updateStream

	width, height int
	quitting      bool
}

// New creates the model for s.
func New(s Session) *Model {
	catalog := s.Catalog()
	bar := progress.New(
		progress.WithGradient("#8257E5", "#9F75FF"),
		progress.WithoutPercentage(),
	)
	m := &Model{
		session:   s,
		keys:      newKeyMap(),
		listC:     newEpisodeList(catalog.Name, catalog.Episodes),
		progressC: bar,
		helpC:     help.New(),
		updates:   updateStream{ch: make(chan struct{}, 1)},
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.updates.ch:
			return updateMsg{}
		case <-m.session.Done():
			return sessionEndedMsg{}
		}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case updateMsg:
		m.refresh()
		return m, m.waitForUpdate()

	case sessionEndedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.listC.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.listC, cmd = m.listC.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.listC, cmd = m.listC.Update(msg)
	return m, cmd
}

// handleKey dispatches a key press. Bindings of disabled controls are
// disabled too, so they never match.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.session.Store()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.playList):
		m.playSelected(m.session.PlayCatalog)
	case key.Matches(msg, m.keys.playSingle):
		m.playSelected(m.session.PlayEpisode)
	case key.Matches(msg, m.keys.togglePlay):
		store.TogglePlay()
	case key.Matches(msg, m.keys.next):
		store.PlayNext()
	case key.Matches(msg, m.keys.previous):
		store.PlayPrevious()
	case key.Matches(msg, m.keys.shuffle):
		store.ToggleShuffle()
	case key.Matches(msg, m.keys.loop):
		store.ToggleLoop()
	case key.Matches(msg, m.keys.rewind):
		m.seek(-seekStep)
	case key.Matches(msg, m.keys.forward):
		m.seek(seekStep)
	case key.Matches(msg, m.keys.showHelp):
		m.helpC.ShowAll = !m.helpC.ShowAll
		m.resize(m.width, m.height)
	default:
		var cmd tea.Cmd
		m.listC, cmd = m.listC.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

func (m *Model) playSelected(play func(int) error) {
	item, ok := m.listC.SelectedItem().(episodeItem)
	if !ok {
		return
	}
	if err := play(item.index); err != nil {
		zlog.Warn().Msgf("tui: play %d failed: %v", item.index, err)
		m.status = err.Error()
	}
}

func (m *Model) seek(delta float64) {
	if err := m.session.Player().SeekBy(delta); err != nil {
		m.status = err.Error()
	}
}

// refresh re-renders the player view and mirrors its controls onto the keys.
func (m *Model) refresh() {
	m.view = m.session.Player().View()
	c := m.view.Controls
	m.keys.setEnabled(controlsState{
		playPause: c.PlayPause.Enabled,
		next:      c.Next.Enabled,
		previous:  c.Previous.Enabled,
		shuffle:   c.Shuffle.Enabled,
		loop:      c.Loop.Enabled,
		seek:      m.view.ShowSlider,
	})
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	x, y := paddingStyle.GetFrameSize()
	px, py := playerStyle.GetFrameSize()
	innerWidth := max(0, width-x)

	m.helpC.Width = innerWidth
	m.progressC.Width = max(10, innerWidth-px-2*len("00:00:00")-2)

	helpHeight := lipgloss.Height(m.helpC.View(m.keys))
	listHeight := height - y - playerPanelLines - py - helpHeight - 1
	m.listC.SetSize(innerWidth, max(0, listHeight))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	x, _ := paddingStyle.GetFrameSize()
	px, _ := playerStyle.GetFrameSize()
	panel := playerStyle.Width(max(0, m.width-x-px)).Render(m.renderPlayer())

	return paddingStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.listC.View(),
		panel,
		m.helpC.View(m.keys),
	))
}

func (m *Model) renderPlayer() string {
	v := m.view
	lines := make([]string, 0, playerPanelLines)

	if v.Empty {
		lines = append(lines, placeholderStyle.Render(v.Placeholder), "", "")
	} else {
		lines = append(lines,
			titleStyle.Render(v.Episode.Title)+" "+timeStyle.Render(fmt.Sprintf("%d/%d", v.Index+1, v.Total)),
			membersStyle.Render(v.Episode.Members),
			timeStyle.Render(v.ProgressLabel)+" "+m.progressC.ViewAs(v.Fraction())+" "+timeStyle.Render(v.DurationLabel),
		)
	}

	lines = append(lines, renderControls(v.Controls))
	if m.status != "" {
		lines = append(lines, errorStyle.Render(m.status))
	} else {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderControls(c player.Controls) string {
	playPause := "▶"
	if c.PlayPause.Active {
		playPause = "⏸"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		renderControl("⤮", c.Shuffle),
		renderControl("⏮", c.Previous),
		renderControl(playPause, c.PlayPause),
		renderControl("⏭", c.Next),
		renderControl("↻", c.Loop),
	)
}

func renderControl(label string, c player.Control) string {
	switch {
	case !c.Enabled:
		return controlDisabledStyle.Render(label)
	case c.Active:
		return controlActiveStyle.Render(label)
	default:
		return controlStyle.Render(label)
	}
}
