package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// KeyMap holds the key bindings of the game.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Launch key.Binding
	Fire   key.Binding
	Mute   key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Fire, k.Mute, k.Pause, k.Quit}
}

// FullHelp returns bindings grouped for the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch, k.Fire},
		{k.Mute, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "launch"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fire"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
