package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/registry"
)

// footerLines is the number of terminal rows below the game screen.
const footerLines = 3

// sessionMode is what the model is waiting for.
type sessionMode int

const (
	modePlaying sessionMode = iota // Keys are game commands
	modePrompt                     // Waiting for the play-again answer
)

// statusReporter is implemented by games that can describe their state in one line.
type statusReporter interface {
	StatusLine() string
}

// Summary describes a finished session.
type Summary struct {
	Games     int // Play-throughs started, including the first
	Wins      int // Play-throughs that ended with a positive score
	BestScore int
}

// Model is the Bubble Tea model for a minefield session. A session is a
// series of play-throughs separated by a play-again prompt.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	mode      sessionMode
	flash     int
	notice    string
	summary   Summary
	err       error
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a game that has already been Reset.
// A nil logger discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    logger,
		summary:   Summary{Games: 1},
	}
}

func gameHeight(screenH int) int {
	return core.Max(screenH-footerLines, 1)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	if key.Matches(msg, keys.ToggleKeys) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.mode == modePrompt {
		return m.handlePrompt(msg)
	}

	if key.Matches(msg, keys.Abort) {
		m.logger.Info("session aborted", "games", m.summary.Games)
		m.game.Step(core.FrameOf(core.ActionQuit))
		m.quitting = true
		return m, tea.Quit
	}

	frame := core.NewInputFrame()
	quit := m.keyMapper.MapKeyToFrame(msg, &frame)
	if frame.Empty() {
		return m, nil
	}

	result := m.game.Step(frame)
	m.notice = ""
	cmd := m.handleEvents(result.Events)

	if result.State.GameOver {
		m.mode = modePrompt
		m.recordGame(result.State)
		m.logger.Info("game over", "game", m.summary.Games, "score", result.State.Score, "quit", quit)
	}
	return m, cmd
}

// handleEvents logs what the step produced and starts the hazard flash.
func (m *Model) handleEvents(events []core.Event) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range events {
		switch e.Kind {
		case core.EventDamage:
			m.logger.Warn("hazard hit", "status", m.status())
			if m.flash == 0 {
				cmd = tickCmd(m.config.TickRate)
			}
			m.flash = flashFrames
		case core.EventBlocked:
			m.logger.Debug("move blocked", "reason", e.Text)
		case core.EventEnd:
			m.logger.Info("play-through ended", "outcome", e.Text, "status", m.status())
		default:
			m.logger.Debug("notice", "text", firstLine(e.Text))
		}
	}
	return cmd
}

func (m *Model) recordGame(st core.GameState) {
	if st.Score > 0 {
		m.summary.Wins++
	}
	m.summary.BestScore = core.Max(m.summary.BestScore, st.Score)
}

// handlePrompt answers the play-again question.
func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapPromptKey(msg) {
	case core.ActionConfirm:
		if err := m.game.Reset(m.config); err != nil {
			m.logger.Error("could not start a new game", "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.summary.Games++
		m.mode = modePlaying
		m.flash = 0
		m.notice = "New game started!"
		m.logger.Info("new game started", "game", m.summary.Games)

	case core.ActionBack, core.ActionQuit:
		m.logger.Info("session finished", "games", m.summary.Games, "wins", m.summary.Wins)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The play-through is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick counts down the hazard flash.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.flash == 0 {
		return m, nil
	}
	m.flash--
	if m.flash == 0 {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) status() string {
	if r, ok := m.game.(statusReporter); ok {
		return strings.ReplaceAll(r.StatusLine(), "\t", "")
	}
	return ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.flash > 0 {
		m.screen.DrawBox(m.screen.Bounds(), core.ColorBrightRed)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	switch {
	case m.mode == modePrompt:
		b.WriteString(promptStyle.Render("Play Again (y/n)? "))
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))

	return b.String()
}

// Prompting reports whether the model is waiting for the play-again answer.
func (m Model) Prompting() bool {
	return m.mode == modePrompt
}

// Summary returns the session totals so far.
func (m Model) Summary() Summary {
	return m.summary
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run resets the game and runs a session until the player declines to play again.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Summary, error) {
	if err := game.Reset(cfg); err != nil {
		return Summary{}, err
	}

	model := NewModel(game, cfg, logger)
	model.logger.Info("session started", "game", game.ID(), "status", model.status())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Summary{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Summary{}, nil
	}
	return m.Summary(), m.Err()
}
