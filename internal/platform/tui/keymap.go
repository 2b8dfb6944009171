package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// GameKeyMap defines the key bindings used during a match.
type GameKeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Restart, k.Pause, k.Screenshot},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the game bindings.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, km.keys.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, km.keys.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, km.keys.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionHistory
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionHistory
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
