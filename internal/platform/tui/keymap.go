package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minefield/internal/core"
)

// KeyMap defines the key bindings for a play session.
// The letter keys match the classic console commands.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Help       key.Binding
	Board      key.Binding
	Quit       key.Binding
	Abort      key.Binding
	Yes        key.Binding
	No         key.Binding
	ToggleKeys key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit, k.ToggleKeys}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Help, k.Board, k.Quit, k.Abort},
		{k.Yes, k.No, k.ToggleKeys},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("l", "left"),
			key.WithHelp("l/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("r", "right"),
			key.WithHelp("r/→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("u", "up"),
			key.WithHelp("u/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("d", "down"),
			key.WithHelp("d/↓", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "instructions"),
		),
		Board: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "print map"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit game"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "play again"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "exit"),
		),
		ToggleKeys: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Printable keys without a binding map to ActionUnknown so the game can
// answer with its unknown command message; other keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp
	case key.Matches(msg, km.keys.Board):
		return core.ActionShowBoard
	case key.Matches(msg, km.keys.Quit), key.Matches(msg, km.keys.Abort):
		return core.ActionQuit
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return core.ActionUnknown
	}
	return core.ActionNone
}

// MapPromptKey translates a key pressed at the play-again prompt.
// Only y and n answer; everything except ctrl+c is ignored.
func (km *KeyMapper) MapPromptKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Yes):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.No):
		return core.ActionBack
	case key.Matches(msg, km.keys.Abort):
		return core.ActionQuit
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}
