package minefield

// Command is one player instruction. Raw input is translated into a
// Command once, at the platform boundary.
type Command int

const (
	CommandUnrecognized Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandHelp
	CommandShowBoard
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandMoveUp:
		return "MoveUp"
	case CommandMoveDown:
		return "MoveDown"
	case CommandHelp:
		return "Help"
	case CommandShowBoard:
		return "ShowBoard"
	default:
		return "Unrecognized"
	}
}

// IsMove reports whether the command tries to change the player position.
func (c Command) IsMove() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandMoveUp, CommandMoveDown:
		return true
	}
	return false
}

// ParseCommand maps the single-letter console commands to a Command:
// h help, l left, r right, u up, d down, p print board.
// Quitting is a driver concern and has no Command.
func ParseCommand(r rune) Command {
	switch r {
	case 'h':
		return CommandHelp
	case 'p':
		return CommandShowBoard
	case 'l':
		return CommandMoveLeft
	case 'r':
		return CommandMoveRight
	case 'u':
		return CommandMoveUp
	case 'd':
		return CommandMoveDown
	default:
		return CommandUnrecognized
	}
}

// NoticeKind classifies a Notice.
type NoticeKind int

const (
	NoticeBoundary       NoticeKind = iota // Move rejected at the board edge
	NoticeHazard                           // Player entered a hazard cell
	NoticeUnknownCommand                   // Command was not recognized
	NoticeHelp                             // Instructions requested
	NoticeBoard                            // Board rendering requested
	NoticeGameOver                         // Move attempted after the game ended
)

// Notice is an informational message produced by ProcessCommand.
// Displaying it is up to the caller.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Notice texts
const (
	textUnknown   = "Unknown command. Use h to see supported commands."
	textHazard    = "BOOM! Unfortunately you hit a mine :("
	textGameOver  = "The game is over. Start a new game to play again."
	textEdgeLeft  = "Can't move further left!"
	textEdgeRight = "Can't move further right!"
	textEdgeUp    = "Can't move further up!"
	textEdgeDown  = "Can't move further down!"
)
