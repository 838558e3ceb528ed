package minefield

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/registry"
	"github.com/vovakirdan/minefield/internal/rng"
)

// GameID is the registry identifier of the minefield game.
const GameID = "minefield"

// Layout of the rendered screen
const (
	boardX      = 2
	boardY      = 2
	panelMargin = 4
	minPanelW   = 20
	maxMessages = 12
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var boardOverrides config.BoardOverrides

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config file values.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetBoardOverrides sets per-run board values that win over config and preset.
func SetBoardOverrides(o config.BoardOverrides) {
	boardOverrides = o
}

// Game adapts the Engine to the platform: it loads configuration, owns the
// generator across play-throughs and turns input frames into commands.
type Game struct {
	cfg        config.MinefieldConfig
	gen        *rng.Generator
	multiplier int
	increment  int
	engine     *Engine
	abandoned  bool
	messages   []core.Event
}

// New creates a new minefield game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Minefield"
}

// Reset loads the configuration and starts a new play-through.
// Runtime generator parameters, when set, win over the config file.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadMinefield(configPath)
	if err != nil {
		return fmt.Errorf("minefield: %w", err)
	}

	if difficultyPreset != "" {
		config.ApplyMinefieldPreset(&cfg, difficultyPreset)
	}
	boardOverrides.Apply(&cfg)

	return g.ResetWithConfig(cfg, runtime)
}

// ResetWithConfig starts a new play-through from an already loaded config.
// The generator is kept between play-throughs so each board continues the
// same sequence; it is rebuilt only when its parameters change. On error
// the current play-through is left as it was.
func (g *Game) ResetWithConfig(cfg config.MinefieldConfig, runtime core.RuntimeConfig) error {
	if runtime.Multiplier > 0 {
		cfg.Generator.Multiplier = runtime.Multiplier
	}
	if runtime.Increment > 0 {
		cfg.Generator.Increment = runtime.Increment
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen, engine := g.gen, g.engine
	if gen == nil || g.multiplier != cfg.Generator.Multiplier || g.increment != cfg.Generator.Increment {
		var err error
		gen, err = rng.New(cfg.Generator.Multiplier, cfg.Generator.Increment)
		if err != nil {
			return fmt.Errorf("minefield: %w", err)
		}
		engine = NewEngine(gen)
	}

	if err := engine.Setup(cfg.Board.Size, cfg.Board.Lives, cfg.Board.Hazards); err != nil {
		return err
	}

	g.gen = gen
	g.engine = engine
	g.multiplier = cfg.Generator.Multiplier
	g.increment = cfg.Generator.Increment
	g.cfg = cfg
	g.abandoned = false
	g.messages = []core.Event{{Kind: core.EventInfo, Text: HelpText(cfg.Board.Size)}}
	return nil
}

// Config returns the configuration of the current play-through.
func (g *Game) Config() config.MinefieldConfig {
	return g.cfg
}

// Step applies the single command carried by the input frame.
// Frames without a game command leave the state unchanged.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.abandoned {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		if g.engine.State().GameOver {
			return core.StepResult{State: g.State()}
		}
		g.Quit()
		events := []core.Event{{Kind: core.EventEnd, Text: g.sessionState().Outcome()}}
		g.messages = events
		return core.StepResult{State: g.State(), Events: events}
	}

	cmd, ok := commandFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	wasOver := g.engine.State().GameOver
	notices := g.engine.ProcessCommand(cmd)

	events := make([]core.Event, 0, len(notices)+1)
	for _, n := range notices {
		events = append(events, core.Event{Kind: eventKind(n.Kind), Text: n.Text})
	}
	if st := g.engine.State(); st.GameOver && !wasOver {
		events = append(events, core.Event{Kind: core.EventEnd, Text: st.Outcome()})
	}

	g.messages = events
	return core.StepResult{State: g.State(), Events: events}
}

// commandFor picks the command of the first game action present in the frame.
func commandFor(in core.InputFrame) (Command, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return CommandMoveLeft, true
	case in.Has(core.ActionRight):
		return CommandMoveRight, true
	case in.Has(core.ActionUp):
		return CommandMoveUp, true
	case in.Has(core.ActionDown):
		return CommandMoveDown, true
	case in.Has(core.ActionHelp):
		return CommandHelp, true
	case in.Has(core.ActionShowBoard):
		return CommandShowBoard, true
	case in.Has(core.ActionUnknown):
		return CommandUnrecognized, true
	}
	return CommandUnrecognized, false
}

func eventKind(k NoticeKind) core.EventKind {
	switch k {
	case NoticeBoundary:
		return core.EventBlocked
	case NoticeHazard:
		return core.EventDamage
	default:
		return core.EventInfo
	}
}

// Quit ends an unfinished play-through as abandoned.
// Finished play-throughs keep their outcome.
func (g *Game) Quit() {
	if g.engine == nil || g.engine.State().GameOver {
		return
	}
	g.abandoned = true
}

// Session returns the engine state with the driver's abandon applied.
func (g *Game) Session() State {
	return g.sessionState()
}

func (g *Game) sessionState() State {
	if g.engine == nil {
		return State{Phase: PhaseReady}
	}
	st := g.engine.State()
	if g.abandoned {
		st.Phase = PhaseAbandoned
	}
	return st
}

// StatusLine returns the position, moves and lives line, or "" before Reset.
func (g *Game) StatusLine() string {
	if g.engine == nil {
		return ""
	}
	return g.engine.StatusLine()
}

// Board returns the printable board. Hazards are shown once the
// play-through has ended, or when reveal is set.
func (g *Game) Board(reveal bool) string {
	if g.engine == nil {
		return ""
	}
	return g.engine.BoardText(reveal || g.finished())
}

func (g *Game) finished() bool {
	return g.abandoned || g.sessionState().Phase.Terminal()
}

// Messages returns the events produced by the last step.
func (g *Game) Messages() []core.Event {
	out := make([]core.Event, len(g.messages))
	copy(out, g.messages)
	return out
}

// Render draws the board, the status line and the latest messages.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCentered(0, " MINEFIELD ", core.ColorBrightYellow)

	if g.engine == nil {
		return
	}

	board, status, panel := layout(dst.Bounds(), g.engine.Size())
	g.drawBoard(dst, board)

	line := strings.ReplaceAll(g.engine.StatusLine(), "\t", " ")
	dst.DrawTextColored(status.X, status.Y, line, core.ColorBrightWhite)

	g.drawMessages(dst, panel)

	footer := "h help  p board  l/r/u/d move  q quit"
	dst.DrawTextColored(boardX, dst.Height()-1, footer, core.ColorGray)
}

// layout places the framed board, the status line under it and the
// messages panel. The panel sits right of the board, or below the status
// line when the screen is too narrow. The last screen row is the footer.
func layout(screen core.Rect, size int) (board, status, panel core.Rect) {
	// Frame walls plus a two digit row number; rules and column letters.
	board = core.NewRect(boardX, boardY, size+4, size+3)
	status = core.NewRect(boardX, board.Bottom()+1, screen.W-boardX, 1)

	x := board.Right() + panelMargin
	panel = core.NewRect(x, boardY, screen.W-x-1, screen.H-1-boardY)
	if panel.W < minPanelW {
		y := status.Bottom() + 1
		panel = core.NewRect(boardX, y, screen.W-boardX*2, screen.H-1-y)
	}
	return board, status, panel
}

// drawBoard draws the framed board and colors the cells.
func (g *Game) drawBoard(dst *core.Screen, board core.Rect) {
	reveal := g.finished()
	lines := strings.Split(strings.TrimSuffix(g.engine.BoardText(reveal), "\n"), "\n")
	for i, line := range lines {
		dst.DrawTextColored(board.X, board.Y+i, line, core.ColorGray)
	}

	size := g.engine.Size()
	cells := g.engine.Cells()
	for row := 0; row < size; row++ {
		y := board.Y + 1 + (size - 1 - row)
		for col := 0; col < size; col++ {
			c := cells[row*size+col]
			dst.SetColored(board.X+1+col, y, c.Symbol(reveal), cellColor(c, reveal))
		}
	}
}

func cellColor(c Cell, reveal bool) core.Color {
	switch c {
	case CellPlayer:
		return core.ColorBrightGreen
	case CellGoal:
		return core.ColorBrightYellow
	case CellVisited:
		return core.ColorDefault
	case CellHazard:
		if reveal {
			return core.ColorRed
		}
	}
	return core.ColorGray
}

// drawMessages word-wraps the latest events into the panel, newest last.
func (g *Game) drawMessages(dst *core.Screen, panel core.Rect) {
	if panel.Empty() {
		return
	}

	var lines []core.Event
	for _, m := range g.messages {
		wrapped := ansi.Wordwrap(m.Text, panel.W, " ")
		for _, line := range strings.Split(strings.TrimRight(wrapped, "\n"), "\n") {
			lines = append(lines, core.Event{Kind: m.Kind, Text: line})
		}
	}

	limit := core.Clamp(panel.H, 0, maxMessages+len(helpCommands))
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	for i, line := range lines {
		dst.DrawTextColored(panel.X, panel.Y+i, line.Text, g.messageColor(line.Kind))
	}
}

func (g *Game) messageColor(k core.EventKind) core.Color {
	switch k {
	case core.EventDamage:
		return core.ColorBrightRed
	case core.EventBlocked:
		return core.ColorYellow
	case core.EventEnd:
		switch g.sessionState().Phase {
		case PhaseWon:
			return core.ColorBrightGreen
		case PhaseLost:
			return core.ColorRed
		default:
			return core.ColorCyan
		}
	default:
		return core.ColorDefault
	}
}

// State returns the current game state. Score is only awarded for a win:
// a hundred points per remaining life minus one per move.
func (g *Game) State() core.GameState {
	st := g.sessionState()
	score := 0
	if st.Phase == PhaseWon {
		score = core.Max(st.Lives*100-st.Moves, 0)
	}
	return core.GameState{
		Score:    score,
		GameOver: st.GameOver || g.abandoned,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
