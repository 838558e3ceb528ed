package minefield

import (
	"strings"
	"testing"
)

func TestPositionLabel(t *testing.T) {
	tests := []struct {
		position int
		size     int
		want     string
	}{
		{0, 8, "A1"},
		{7, 8, "H1"},
		{8, 8, "A2"},
		{9, 8, "B2"},
		{63, 8, "H8"},
		{15, 4, "D4"},
		{675, 26, "Z26"},
	}

	for _, tc := range tests {
		if got := PositionLabel(tc.position, tc.size); got != tc.want {
			t.Errorf("PositionLabel(%d, %d) = %q, expected %q", tc.position, tc.size, got, tc.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	e := newEngine(t, 13, 1)
	if err := e.SetupDefault(); err != nil {
		t.Fatalf("SetupDefault error: %v", err)
	}

	want := "CURRENT POSITION: A1\t MOVES: 0\t LIVES LEFT: 4"
	if got := e.StatusLine(); got != want {
		t.Errorf("StatusLine() = %q, expected %q", got, want)
	}

	e.ProcessCommand(CommandMoveUp)
	e.ProcessCommand(CommandMoveRight)
	if got := e.StatusLine(); !strings.HasPrefix(got, "CURRENT POSITION: B2\t MOVES: 2") {
		t.Errorf("StatusLine() = %q, expected position B2 after 2 moves", got)
	}
}

func TestBoardText(t *testing.T) {
	e := newEngine(t, 13, 1)
	if err := e.Setup(4, 2, 2); err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	hidden := " ----\n" +
		"|???G|4\n" +
		"|????|3\n" +
		"|????|2\n" +
		"|*???|1\n" +
		" ----\n" +
		" ABCD\n"
	if got := e.BoardText(false); got != hidden {
		t.Errorf("BoardText(false) =\n%s\nexpected\n%s", got, hidden)
	}

	revealed := " ----\n" +
		"|???G|4\n" +
		"|????|3\n" +
		"|??X?|2\n" +
		"|*??X|1\n" +
		" ----\n" +
		" ABCD\n"
	if got := e.BoardText(true); got != revealed {
		t.Errorf("BoardText(true) =\n%s\nexpected\n%s", got, revealed)
	}

	e.ProcessCommand(CommandMoveUp)
	e.ProcessCommand(CommandMoveRight)
	lines := strings.Split(e.BoardText(false), "\n")
	if lines[3] != "| *??|2" || lines[4] != "| ???|1" {
		t.Errorf("board after moving = %q, %q; expected visited start and player on B2", lines[3], lines[4])
	}
}

func TestBoardTextShowsNoHazardsWhenHidden(t *testing.T) {
	e := newEngine(t, 7, 1)
	if err := e.Setup(8, 3, 20); err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if strings.ContainsRune(e.BoardText(false), HazardChar) {
		t.Error("hidden board should not show hazards")
	}
	if got := strings.Count(e.BoardText(true), string(HazardChar)); got != 20 {
		t.Errorf("revealed board shows %d hazards, expected 20", got)
	}
}

func TestHelpText(t *testing.T) {
	text := HelpText(8)
	for _, want := range []string{"8x8 board", "A1", " h = show instructions", " p = print map", " q = quit game"} {
		if !strings.Contains(text, want) {
			t.Errorf("HelpText(8) missing %q", want)
		}
	}
}

func TestCellSymbol(t *testing.T) {
	tests := []struct {
		cell   Cell
		reveal bool
		want   rune
	}{
		{CellPlayer, false, '*'},
		{CellVisited, false, ' '},
		{CellGoal, false, 'G'},
		{CellEmpty, false, '?'},
		{CellHazard, false, '?'},
		{CellHazard, true, 'X'},
		{CellEmpty, true, '?'},
	}

	for _, tc := range tests {
		if got := tc.cell.Symbol(tc.reveal); got != tc.want {
			t.Errorf("%v.Symbol(%v) = %q, expected %q", tc.cell, tc.reveal, got, tc.want)
		}
	}
}
