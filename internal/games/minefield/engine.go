// Package minefield implements a turn-based grid game: the player walks from
// the bottom-left cell to the top-right cell while hidden hazards, placed by
// a deterministic generator, cost one life each the first time they are
// entered.
package minefield

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/minefield/internal/rng"
)

// Board limits. Columns are labeled with single letters, hence MaxSize.
const (
	MinSize = 4
	MaxSize = 26

	DefaultSize    = 8
	DefaultLives   = 4
	DefaultHazards = 8
)

var (
	// ErrInvalidParameter is returned by Setup for unusable board parameters.
	ErrInvalidParameter = errors.New("minefield: invalid parameter")
	// ErrOutOfRange is returned by CellAt for coordinates outside the board.
	ErrOutOfRange = errors.New("minefield: out of range")
)

// Engine owns the board and the state of one play-through.
// It is not safe for concurrent use.
type Engine struct {
	src   rng.Source
	size  int
	cells []Cell
	state State
}

// NewEngine creates an engine that places hazards with src.
// Setup must be called before commands have any effect.
func NewEngine(src rng.Source) *Engine {
	return &Engine{
		src:   src,
		state: State{Phase: PhaseReady},
	}
}

// SetupDefault starts a game on an 8x8 board with 4 lives and 8 hazards.
func (e *Engine) SetupDefault() error {
	return e.Setup(DefaultSize, DefaultLives, DefaultHazards)
}

// maxStalledDraws bounds the draws in a row that hit an occupied cell.
// A 16-bit generator that goes this long without a new cell is cycling.
const maxStalledDraws = rng.Modulus

// Setup starts a new play-through, discarding any previous one.
// Hazards are placed by rejection sampling over cells 1..size*size-2,
// continuing the generator's sequence. A generator that keeps repeating
// occupied cells fails with ErrInvalidParameter. On error the previous
// game is left untouched.
func (e *Engine) Setup(size, lives, hazards int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: board size %d not in [%d, %d]", ErrInvalidParameter, size, MinSize, MaxSize)
	}

	total := size * size
	if lives < 0 || hazards < 0 || hazards > total-2 {
		return fmt.Errorf("%w: lives %d or hazards %d invalid for %d cells", ErrInvalidParameter, lives, hazards, total)
	}

	cells := make([]Cell, total)
	cells[0] = CellPlayer
	cells[total-1] = CellGoal

	for placed, stalled := 0, 0; placed < hazards; {
		if stalled >= maxStalledDraws {
			return fmt.Errorf("%w: generator stopped producing new cells after placing %d of %d hazards",
				ErrInvalidParameter, placed, hazards)
		}
		pos, err := e.src.NextValue(1, total-1)
		if err != nil {
			return fmt.Errorf("minefield: placing hazards: %w", err)
		}
		if pos < 0 || pos >= total {
			return fmt.Errorf("%w: generator returned cell %d outside board", ErrInvalidParameter, pos)
		}
		if cells[pos] != CellEmpty {
			stalled++
			continue
		}
		cells[pos] = CellHazard
		placed++
		stalled = 0
	}

	e.size = size
	e.cells = cells
	e.state = State{
		Lives:      lives,
		StartLives: lives,
		Hazards:    hazards,
		Phase:      PhaseInProgress,
	}
	return nil
}

// ProcessCommand applies one command and returns the notices it produced.
// Before Setup it does nothing. After the game is over, moves are refused.
func (e *Engine) ProcessCommand(cmd Command) []Notice {
	if e.cells == nil {
		return nil
	}

	var notices []Notice

	switch {
	case cmd == CommandHelp:
		notices = append(notices, Notice{Kind: NoticeHelp, Text: HelpText(e.size)})
	case cmd == CommandShowBoard:
		notices = append(notices, Notice{Kind: NoticeBoard, Text: e.BoardText(false)})
	case cmd.IsMove() && e.state.GameOver:
		return []Notice{{Kind: NoticeGameOver, Text: textGameOver}}
	case cmd.IsMove():
		notices = append(notices, e.move(cmd)...)
	default:
		notices = append(notices, Notice{Kind: NoticeUnknownCommand, Text: textUnknown})
	}

	e.state.GameOver = e.state.Position == len(e.cells)-1 || e.state.Lives == 0
	e.updatePhase()
	return notices
}

// move attempts a single step and applies its consequences.
func (e *Engine) move(cmd Command) []Notice {
	previous := e.state.Position
	next, ok := e.target(cmd)
	if !ok {
		return []Notice{{Kind: NoticeBoundary, Text: edgeText(cmd)}}
	}

	var notices []Notice
	e.state.Position = next
	e.state.Moves++
	e.cells[previous] = CellVisited

	// The hazard marker is overwritten below, so each hazard fires once.
	if e.cells[next] == CellHazard {
		e.state.Lives--
		notices = append(notices, Notice{Kind: NoticeHazard, Text: textHazard})
	}
	e.cells[next] = CellPlayer

	return notices
}

// target returns the destination of a move and whether it stays on the board.
func (e *Engine) target(cmd Command) (int, bool) {
	pos := e.state.Position
	row, col := pos/e.size, pos%e.size

	switch cmd {
	case CommandMoveLeft:
		return pos - 1, col > 0
	case CommandMoveRight:
		return pos + 1, col < e.size-1
	case CommandMoveUp:
		return pos + e.size, row < e.size-1
	case CommandMoveDown:
		return pos - e.size, row > 0
	}
	return pos, false
}

func edgeText(cmd Command) string {
	switch cmd {
	case CommandMoveLeft:
		return textEdgeLeft
	case CommandMoveRight:
		return textEdgeRight
	case CommandMoveUp:
		return textEdgeUp
	default:
		return textEdgeDown
	}
}

func (e *Engine) updatePhase() {
	switch {
	case !e.state.GameOver:
		e.state.Phase = PhaseInProgress
	case e.state.Lives == 0:
		e.state.Phase = PhaseLost
	default:
		e.state.Phase = PhaseWon
	}
}

// State returns a snapshot of the current play-through.
func (e *Engine) State() State {
	return e.state
}

// Size returns the board side length, or 0 before Setup.
func (e *Engine) Size() int {
	return e.size
}

// CellAt returns the marker at (row, col), with row 0 at the bottom.
// The pair is checked through its row-major index.
func (e *Engine) CellAt(row, col int) (Cell, error) {
	pos := row*e.size + col
	if e.cells == nil || pos < 0 || pos >= len(e.cells) {
		return 0, fmt.Errorf("%w: row %d col %d", ErrOutOfRange, row, col)
	}
	return e.cells[pos], nil
}

// Cells returns a copy of the board in row-major order.
func (e *Engine) Cells() []Cell {
	out := make([]Cell, len(e.cells))
	copy(out, e.cells)
	return out
}
