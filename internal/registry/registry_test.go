package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/minefield/internal/core"
)

// stubGame is not zero-sized so separate instances compare unequal.
type stubGame struct{ n int }

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub Game" }
func (g *stubGame) Reset(core.RuntimeConfig) error       { return nil }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Game { return &stubGame{} })

	if !Exists("stub") {
		t.Fatal("Exists(stub) = false after Register")
	}

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create(stub) error: %v", err)
	}
	if g.Title() != "Stub Game" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub Game")
	}

	other, _ := Create("stub")
	if g == other {
		t.Error("Create should return a fresh instance each time")
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub" {
			found = info.Title == "Stub Game"
		}
	}
	if !found {
		t.Errorf("List() = %+v, expected stub with its title", List())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(no-such-game) error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no-such-game") {
		t.Error("Exists(no-such-game) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same ID should panic")
		}
	}()
	Register("dup", func() Game { return &stubGame{} })
}
