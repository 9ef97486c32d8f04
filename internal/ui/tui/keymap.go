package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the player key bindings. It implements help.KeyMap.
type keyMap struct {
	playList   key.Binding
	playSingle key.Binding
	togglePlay key.Binding
	next       key.Binding
	previous   key.Binding
	shuffle    key.Binding
	loop       key.Binding
	rewind     key.Binding
	forward    key.Binding
	showHelp   key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		playList: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play from here"),
		),
		playSingle: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play episode"),
		),
		togglePlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		previous: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "previous"),
		),
		shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		loop: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "loop"),
		),
		rewind: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "-10s"),
		),
		forward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "+10s"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.playList, k.togglePlay, k.next, k.previous, k.showHelp, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.playList, k.playSingle, k.togglePlay},
		{k.next, k.previous, k.shuffle, k.loop},
		{k.rewind, k.forward, k.showHelp, k.quit},
	}
}

// setEnabled mirrors the player controls onto the bindings so help only
// lists what can be used.
func (k *keyMap) setEnabled(controls controlsState) {
	k.togglePlay.SetEnabled(controls.playPause)
	k.next.SetEnabled(controls.next)
	k.previous.SetEnabled(controls.previous)
	k.shuffle.SetEnabled(controls.shuffle)
	k.loop.SetEnabled(controls.loop)
	k.rewind.SetEnabled(controls.seek)
	k.forward.SetEnabled(controls.seek)
}

// controlsState lists which transport bindings are usable.
type controlsState struct {
	playPause, next, previous, shuffle, loop, seek bool
}
