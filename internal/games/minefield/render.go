package minefield

import (
	"fmt"
	"strings"
)

// PositionLabel converts a row-major cell index to its board label,
// column letter first and 1-based row second, so 0 is "A1".
func PositionLabel(position, size int) string {
	if size <= 0 {
		return "?"
	}
	col := rune('A' + position%size)
	row := position/size + 1
	return fmt.Sprintf("%c%d", col, row)
}

// HelpText returns the instructions for a board of the given size.
func HelpText(size int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are on a %dx%d board. The goal is to move your player from position A1 "+
		"(bottom left) to the top right position but be careful, mines are lurking everywhere\n", size, size)
	b.WriteString("\nThe following commands are available:\n")
	for _, line := range helpCommands {
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

var helpCommands = []string{
	"h = show instructions",
	"l = move left",
	"r = move right",
	"u = move up",
	"d = move down",
	"p = print map",
	"q = quit game",
}

// StatusLine describes the player position, move count and remaining lives.
func (e *Engine) StatusLine() string {
	return fmt.Sprintf("CURRENT POSITION: %s\t MOVES: %d\t LIVES LEFT: %d",
		PositionLabel(e.state.Position, e.size), e.state.Moves, e.state.Lives)
}

// BoardText draws the board with the top row first. Each row is framed by
// '|' and followed by its 1-based number; column letters run underneath.
// Hazards stay hidden unless reveal is set.
func (e *Engine) BoardText(reveal bool) string {
	if e.cells == nil {
		return ""
	}

	rule := " " + strings.Repeat("-", e.size) + "\n"

	var b strings.Builder
	b.WriteString(rule)
	for row := e.size - 1; row >= 0; row-- {
		b.WriteByte('|')
		for col := 0; col < e.size; col++ {
			b.WriteRune(e.cells[row*e.size+col].Symbol(reveal))
		}
		fmt.Fprintf(&b, "|%d\n", row+1)
	}
	b.WriteString(rule)
	b.WriteByte(' ')
	for col := 0; col < e.size; col++ {
		b.WriteRune(rune('A' + col))
	}
	b.WriteByte('\n')
	return b.String()
}
