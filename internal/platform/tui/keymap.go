package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/censorbox/internal/core"
	"github.com/vovakirdan/censorbox/internal/round"
)

// GameKeyMap defines the key bindings on the device.
type GameKeyMap struct {
	Pad1    key.Binding
	Pad2    key.Binding
	Pad3    key.Binding
	Pad4    key.Binding
	Skip    key.Binding
	Mute    key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pad1, k.Pad2, k.Pad3, k.Pad4, k.Skip, k.Mute, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pad1, k.Pad2, k.Pad3, k.Pad4, k.Skip},
		{k.Mute, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Pad1: key.NewBinding(
			key.WithKeys("1", "q"),
			key.WithHelp("1/q", "S"),
		),
		Pad2: key.NewBinding(
			key.WithKeys("2", "w"),
			key.WithHelp("2/w", "M"),
		),
		Pad3: key.NewBinding(
			key.WithKeys("3", "s"),
			key.WithHelp("3/s", "L"),
		),
		Pad4: key.NewBinding(
			key.WithKeys("4", "a"),
			key.WithHelp("4/a", "XL"),
		),
		Skip: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "skip"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "new document"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Mute   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to platform actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Game GameKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game: DefaultGameKeyMap(),
		Menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message on the device to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.Game
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Pad1):
		return core.ActionPad1, false
	case key.Matches(msg, k.Pad2):
		return core.ActionPad2, false
	case key.Matches(msg, k.Pad3):
		return core.ActionPad3, false
	case key.Matches(msg, k.Pad4):
		return core.ActionPad4, false
	case key.Matches(msg, k.Skip):
		return core.ActionSkip, false
	case key.Matches(msg, k.Mute):
		return core.ActionMute, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) core.Action {
	k := km.Menu
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Select):
		return core.ActionConfirm
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	}
	return core.ActionNone
}

// RoundAction converts a pad press into the round input it stands for.
// Non-pad actions map to round.ActionNone.
func RoundAction(a core.Action) round.Action {
	if a == core.ActionSkip {
		return round.ActionSkip
	}
	if n, ok := a.Pad(); ok {
		return round.Action(n)
	}
	return round.ActionNone
}
