package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // U, Up arrow - move up one row
	ActionDown             // D, Down arrow - move down one row
	ActionLeft             // L, Left arrow - move one column left
	ActionRight            // R, Right arrow - move one column right
	ActionHelp             // H - show instructions
	ActionShowBoard        // P - print the board
	ActionUnknown          // Any other printable key
	ActionConfirm          // Enter, Y - confirm selection / play again
	ActionBack             // N, Escape - go back / decline
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHelp:
		return "Help"
	case ActionShowBoard:
		return "ShowBoard"
	case ActionUnknown:
		return "Unknown"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Invalid"
	}
}

// InputFrame is the set of actions produced by one key press.
// It is a small value type; copies never share state.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf creates a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func (a Action) bit() uint32 {
	if a < 0 || a >= 32 {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	f.bits |= a.bit()
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
