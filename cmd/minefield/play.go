package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/games/minefield"
	"github.com/vovakirdan/minefield/internal/platform/tui"
	"github.com/vovakirdan/minefield/internal/registry"
)

// boardFlags holds the per-run board overrides shared by play and reveal.
type boardFlags struct {
	size    int
	lives   int
	hazards int
}

func (b *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&b.size, "size", 0, "Board side length, 4-26 (0 = from config)")
	cmd.Flags().IntVar(&b.lives, "lives", 0, "Lives (default from config)")
	cmd.Flags().IntVar(&b.hazards, "hazards", 0, "Hidden hazards (default from config)")
}

// overrides converts the flags, treating --lives and --hazards as set only
// when given so that 0 can be asked for explicitly.
func (b *boardFlags) overrides(cmd *cobra.Command) config.BoardOverrides {
	o := config.BoardOverrides{Size: b.size}
	if cmd.Flags().Changed("lives") {
		l := b.lives
		o.Lives = &l
	}
	if cmd.Flags().Changed("hazards") {
		h := b.hazards
		o.Hazards = &h
	}
	return o
}

var playBoard boardFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a minefield session",
	Long: `Start a session. When a game ends you are asked whether to play again;
each new board continues the generator sequence of the previous one.

Controls:
  l/Left   - Move left
  r/Right  - Move right
  u/Up     - Move up
  d/Down   - Move down
  h        - Show instructions
  p        - Print the board
  q        - Quit the current game
  y/n      - Answer the play-again prompt
  Ctrl+C   - Exit immediately

Difficulty options:
  easy     - 8x8, 6 lives, 8 hazards
  classic  - 8x8, 4 lives, 8 hazards
  normal   - 8x8, 6 lives, 16 hazards
  hard     - 12x12, 3 lives, 40 hazards

Examples:
  minefield play
  minefield play --difficulty easy
  minefield play --size 6 --lives 2 --hazards 0
  minefield play --config ./my-minefield.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playBoard.register(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	exitOnError("", configureGame(playBoard.overrides(cmd)))
	summary, err := playSession(runtimeConfig())
	exitOnError("running game", err)
	printSummary(summary)
}

// playSession creates a fresh game and runs it until the player stops.
func playSession(cfg core.RuntimeConfig) (tui.Summary, error) {
	game, err := registry.Create(minefield.GameID)
	if err != nil {
		return tui.Summary{}, fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting session", "difficulty", flagDifficulty, "config", flagConfig)
	return tui.Run(game, cfg, logger)
}

func printSummary(s tui.Summary) {
	fmt.Println("Thanks for playing!")
	fmt.Printf("Games: %d  Wins: %d  Best score: %d\n", s.Games, s.Wins, s.BestScore)
}
