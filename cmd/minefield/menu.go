package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/games/minefield"
	"github.com/vovakirdan/minefield/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose a difficulty, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty and Enter to play.
After a session ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play the selected difficulty
  Esc/Q        - Quit

Examples:
  minefield menu
  minefield menu --multiplier 13 --increment 1`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	exitOnError("", configureGame(config.BoardOverrides{}))
	cfg := runtimeConfig()

	initial, _ := config.ParsePreset(flagDifficulty)
	total := tui.Summary{}

	// Menu loop
	for {
		preset, ok, err := tui.RunPresetSelector(initial, cfg)
		exitOnError("", err)
		if !ok {
			break
		}

		logger.Info("difficulty selected", "preset", preset)
		minefield.SetDifficultyPreset(string(preset))
		initial = preset

		summary, err := playSession(cfg)
		exitOnError("running game", err)

		total.Games += summary.Games
		total.Wins += summary.Wins
		total.BestScore = max(total.BestScore, summary.BestScore)
	}

	if total.Games > 0 {
		printSummary(total)
	}
}
