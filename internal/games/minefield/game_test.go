package minefield

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/registry"
)

func testConfig(size, lives, hazards int) config.MinefieldConfig {
	return config.MinefieldConfig{
		Board:     config.BoardConfig{Size: size, Lives: lives, Hazards: hazards},
		Generator: config.GeneratorConfig{Multiplier: 13, Increment: 1},
	}
}

func newGame(t *testing.T, cfg config.MinefieldConfig) *Game {
	t.Helper()
	g := New()
	if err := g.ResetWithConfig(cfg, core.DefaultConfig()); err != nil {
		t.Fatalf("ResetWithConfig error: %v", err)
	}
	return g
}

func step(g *Game, actions ...core.Action) []core.StepResult {
	results := make([]core.StepResult, 0, len(actions))
	for _, a := range actions {
		results = append(results, g.Step(core.FrameOf(a)))
	}
	return results
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("registry.Create error: %v", err)
	}
	if g.ID() != "minefield" || g.Title() != "Minefield" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameWin(t *testing.T) {
	g := newGame(t, testConfig(4, 2, 2))

	results := step(g, core.ActionRight, core.ActionRight, core.ActionRight)
	if !results[2].Has(core.EventDamage) {
		t.Errorf("entering cell 3 should report damage, events = %+v", results[2].Events)
	}

	results = step(g, core.ActionUp, core.ActionUp, core.ActionUp)
	last := results[2]
	if !last.Has(core.EventEnd) {
		t.Fatalf("reaching the goal should end the game, events = %+v", last.Events)
	}
	if !last.State.GameOver {
		t.Error("State.GameOver should be set after a win")
	}
	if last.State.Score != 94 {
		t.Errorf("Score = %d, expected 94 (1 life, 6 moves)", last.State.Score)
	}

	end := last.Events[len(last.Events)-1]
	if end.Text != "Congratulations! You completed the game in 6 moves." {
		t.Errorf("end event = %q", end.Text)
	}
	if g.Session().Phase != PhaseWon {
		t.Errorf("Phase = %q, expected %q", g.Session().Phase, PhaseWon)
	}
}

func TestGameLoseHasNoScore(t *testing.T) {
	g := newGame(t, testConfig(4, 1, 2))

	results := step(g, core.ActionRight, core.ActionRight, core.ActionRight)
	last := results[2]
	if !last.Has(core.EventEnd) || !last.State.GameOver {
		t.Fatalf("losing the last life should end the game, result = %+v", last)
	}
	if last.State.Score != 0 {
		t.Errorf("Score = %d, expected 0 for a loss", last.State.Score)
	}
	if g.Session().Phase != PhaseLost {
		t.Errorf("Phase = %q, expected %q", g.Session().Phase, PhaseLost)
	}
	if !strings.Contains(g.Board(false), "X") {
		t.Error("hazards should be revealed once the game is over")
	}
}

func TestGameBlockedAndInfoEvents(t *testing.T) {
	g := newGame(t, testConfig(4, 2, 0))

	tests := []struct {
		action core.Action
		kind   core.EventKind
	}{
		{core.ActionLeft, core.EventBlocked},
		{core.ActionDown, core.EventBlocked},
		{core.ActionHelp, core.EventInfo},
		{core.ActionShowBoard, core.EventInfo},
		{core.ActionUnknown, core.EventInfo},
	}
	for _, tc := range tests {
		res := g.Step(core.FrameOf(tc.action))
		if len(res.Events) != 1 || res.Events[0].Kind != tc.kind {
			t.Errorf("Step(%v) events = %+v, expected one event of kind %d", tc.action, res.Events, tc.kind)
		}
	}
	if msgs := g.Messages(); len(msgs) != 1 || msgs[0].Text != textUnknown {
		t.Errorf("Messages() = %+v, expected the last step's event", msgs)
	}

	if res := g.Step(core.NewInputFrame()); len(res.Events) != 0 {
		t.Errorf("empty frame produced events %+v", res.Events)
	}
	if st := g.Session(); st.Moves != 0 {
		t.Errorf("Moves = %d, expected 0", st.Moves)
	}
}

func TestGameQuit(t *testing.T) {
	g := newGame(t, testConfig(4, 2, 0))
	step(g, core.ActionRight)

	res := g.Step(core.FrameOf(core.ActionQuit))
	if !res.Has(core.EventEnd) || res.Events[0].Text != "Thanks for playing!" {
		t.Errorf("quit events = %+v, expected a thanks message", res.Events)
	}
	if !res.State.GameOver {
		t.Error("State.GameOver should be set after quitting")
	}
	if g.Session().Phase != PhaseAbandoned {
		t.Errorf("Phase = %q, expected %q", g.Session().Phase, PhaseAbandoned)
	}

	step(g, core.ActionRight, core.ActionUp)
	if g.Session().Moves != 1 {
		t.Errorf("moves after quitting = %d, expected 1", g.Session().Moves)
	}
}

func TestGameQuitAfterWinKeepsOutcome(t *testing.T) {
	g := newGame(t, testConfig(4, 2, 0))
	step(g, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionUp, core.ActionUp, core.ActionUp)

	g.Quit()
	if g.Session().Phase != PhaseWon {
		t.Errorf("Phase = %q after Quit on a won game, expected %q", g.Session().Phase, PhaseWon)
	}
	if g.State().Score != 194 {
		t.Errorf("Score = %d, expected 194", g.State().Score)
	}
}

func TestGameResetContinuesSequence(t *testing.T) {
	g := newGame(t, testConfig(4, 2, 2))
	first := g.Snapshot()
	if first.Draws != 2 {
		t.Fatalf("Draws after first reset = %d, expected 2", first.Draws)
	}

	step(g, core.ActionRight)
	if err := g.ResetWithConfig(testConfig(4, 2, 2), core.DefaultConfig()); err != nil {
		t.Fatalf("second reset error: %v", err)
	}
	second := g.Snapshot()
	if second.Draws <= first.Draws {
		t.Errorf("Draws = %d after second reset, expected more than %d", second.Draws, first.Draws)
	}
	if second.Moves != 0 || second.Position != 0 || second.Phase != string(PhaseInProgress) {
		t.Errorf("second play-through not fresh: %+v", second)
	}

	runtime := core.DefaultConfig()
	runtime.Multiplier = 7
	if err := g.ResetWithConfig(testConfig(4, 2, 2), runtime); err != nil {
		t.Fatalf("reset with new multiplier error: %v", err)
	}
	third := g.Snapshot()
	if third.Multiplier != 7 || third.Draws != 2 {
		t.Errorf("new generator snapshot = %+v, expected multiplier 7 and 2 draws", third)
	}
}

func TestGameSnapshotDeterministic(t *testing.T) {
	play := func() Snapshot {
		g := newGame(t, testConfig(6, 3, 8))
		step(g, core.ActionUp, core.ActionRight, core.ActionUp, core.ActionRight)
		return g.Snapshot()
	}

	a, b := play(), play()
	if a.Lives != b.Lives || a.Moves != b.Moves || a.Position != b.Position || a.Draws != b.Draws {
		t.Fatalf("snapshots differ: %+v vs %+v", a, b)
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs: %d vs %d", i, a.Cells[i], b.Cells[i])
		}
	}
	if a.Hazards != 8 || len(a.Cells) != 36 {
		t.Errorf("snapshot = %+v, expected 8 hazards on 36 cells", a)
	}
}

func TestGameInvalidConfigKeepsState(t *testing.T) {
	g := newGame(t, testConfig(4, 2, 0))
	step(g, core.ActionRight)
	before := g.Snapshot()

	tests := []struct {
		name string
		cfg  config.MinefieldConfig
	}{
		{"too many hazards", testConfig(4, 2, 15)},
		{"board too small", testConfig(3, 2, 0)},
		{"multiplier not prime", config.MinefieldConfig{
			Board:     config.BoardConfig{Size: 4, Lives: 2},
			Generator: config.GeneratorConfig{Multiplier: 12, Increment: 1},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.ResetWithConfig(tc.cfg, core.DefaultConfig())
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("ResetWithConfig error = %v, expected ErrInvalidConfig", err)
			}
			if after := g.Snapshot(); after.Moves != before.Moves || after.Position != before.Position {
				t.Errorf("failed reset changed state: %+v -> %+v", before, after)
			}
		})
	}
}

func TestGameResetFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minefield.yaml")
	yaml := "board:\n  size: 5\n  lives: 2\n  hazards: 3\ngenerator:\n  multiplier: 13\n  increment: 1\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetBoardOverrides(config.BoardOverrides{})
	})

	g := New()
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if cfg := g.Config(); cfg.Board.Size != 5 || cfg.Board.Hazards != 3 {
		t.Errorf("Config() = %+v, expected the file's board", cfg)
	}

	SetDifficultyPreset("hard")
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset with preset error: %v", err)
	}
	if cfg := g.Config(); cfg.Board.Size != 12 || cfg.Board.Lives != 3 || cfg.Board.Hazards != 40 {
		t.Errorf("Config() = %+v, expected the hard preset", cfg)
	}

	hazards := 0
	SetBoardOverrides(config.BoardOverrides{Size: 6, Hazards: &hazards})
	if err := g.Reset(core.DefaultConfig()); err != nil {
		t.Fatalf("Reset with overrides error: %v", err)
	}
	if cfg := g.Config(); cfg.Board.Size != 6 || cfg.Board.Lives != 3 || cfg.Board.Hazards != 0 {
		t.Errorf("Config() = %+v, expected overrides on top of the preset", cfg)
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t, testConfig(4, 2, 2))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"MINEFIELD", "|???G|4", "|*???|1", " ABCD", "CURRENT POSITION: A1", "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q:\n%s", want, out)
		}
	}

	// Bottom row of the board holds the player.
	if c := screen.GetCell(boardX+1, boardY+4); c.Rune != PlayerChar || c.Color != core.ColorBrightGreen {
		t.Errorf("player cell = %+v, expected green %q", c, PlayerChar)
	}
	if c := screen.GetCell(boardX+4, boardY+1); c.Rune != GoalChar || c.Color != core.ColorBrightYellow {
		t.Errorf("goal cell = %+v, expected yellow %q", c, GoalChar)
	}

	step(g, core.ActionRight, core.ActionRight, core.ActionRight)
	g.Render(screen)
	if !strings.Contains(screen.String(), "BOOM!") {
		t.Errorf("hazard message not rendered:\n%s", screen.String())
	}
}

func TestGameBeforeReset(t *testing.T) {
	g := New()
	if res := g.Step(core.FrameOf(core.ActionUp)); res.State.GameOver || len(res.Events) != 0 {
		t.Errorf("Step before Reset = %+v, expected no effect", res)
	}
	if g.StatusLine() != "" || g.Board(true) != "" {
		t.Error("StatusLine and Board should be empty before Reset")
	}
	if g.Session().Phase != PhaseReady {
		t.Errorf("Phase = %q, expected %q", g.Session().Phase, PhaseReady)
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "MINEFIELD") {
		t.Error("title should render before Reset")
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name   string
		screen core.Rect
		size   int
		panel  core.Rect
	}{
		{"panel beside board", core.NewRect(0, 0, 80, 24), 8, core.NewRect(18, 2, 61, 21)},
		{"panel below status", core.NewRect(0, 0, 30, 40), 8, core.NewRect(2, 16, 26, 23)},
		{"no room for panel", core.NewRect(0, 0, 30, 16), 8, core.NewRect(2, 16, 26, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board, status, panel := layout(tc.screen, tc.size)
			if board != core.NewRect(2, 2, tc.size+4, tc.size+3) {
				t.Errorf("board = %+v", board)
			}
			if status.Y != board.Bottom()+1 {
				t.Errorf("status row = %d, expected %d", status.Y, board.Bottom()+1)
			}
			if panel != tc.panel {
				t.Errorf("panel = %+v, expected %+v", panel, tc.panel)
			}
		})
	}
}
