package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/games/minefield"
)

var revealBoard boardFlags

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Print the initial board with hazards shown",
	Long: `Set up a board exactly as 'play' would and print it with every hazard
marked X. Useful for checking generator parameters or replaying a layout.

Examples:
  minefield reveal
  minefield reveal --multiplier 1 --increment 1 --hazards 10
  minefield reveal --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runReveal,
}

func init() {
	revealBoard.register(revealCmd)
}

func runReveal(cmd *cobra.Command, _ []string) {
	exitOnError("", configureGame(revealBoard.overrides(cmd)))

	game := minefield.New()
	exitOnError("", game.Reset(runtimeConfig()))
	writeReveal(os.Stdout, game)
}

// writeReveal prints the revealed board, its parameters and the hazard cells.
func writeReveal(w io.Writer, game *minefield.Game) {
	cfg := game.Config()
	fmt.Fprintf(w, "Board %dx%d, %d lives, %d hazards (multiplier %d, increment %d)\n\n",
		cfg.Board.Size, cfg.Board.Size, cfg.Board.Lives, cfg.Board.Hazards,
		cfg.Generator.Multiplier, cfg.Generator.Increment)
	fmt.Fprint(w, game.Board(true))

	snap := game.Snapshot()
	var labels []string
	for i, c := range snap.Cells {
		if minefield.Cell(c) == minefield.CellHazard {
			labels = append(labels, minefield.PositionLabel(i, snap.Size))
		}
	}
	fmt.Fprintln(w)
	if len(labels) == 0 {
		fmt.Fprintln(w, "No hazards.")
		return
	}
	fmt.Fprintf(w, "Hazards: %s\n", strings.Join(labels, " "))
	logger.Debug("board revealed", "hazards", len(labels), "draws", snap.Draws)
}
