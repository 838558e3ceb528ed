// minefield is a turn-based hazard-dodging game for the terminal.
//
// Usage:
//
//	minefield play             - Play a session with the play-again loop
//	minefield menu             - Pick a difficulty, then play
//	minefield list             - List games and difficulty presets
//	minefield sequence         - Print generator draws
//	minefield reveal           - Print the initial board with hazards shown
//
// Global flags:
//
//	--config <path>        - Custom minefield.yaml
//	--difficulty <preset>  - easy, classic, normal or hard
//	--multiplier <n>       - Generator multiplier (prime)
//	--increment <n>        - Generator increment
//	--log-file <path>      - Write logs to a file (default: discarded)
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/games/minefield"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagMultiplier int
	flagIncrement  int
	flagLogFile    string
	flagLogLevel   string
)

// logger is set up by the root command before any subcommand runs.
var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Minefield - Cross the board without running out of lives",
	Long: `Minefield is a turn-based game played in the terminal.

Move your player from A1 (bottom left) to the top right cell. Hidden
hazards cost one life each the first time you step on them.
Hazard layouts come from a deterministic generator, so the same
multiplier and increment always produce the same boards.

Available commands:
  play      - Play a session
  menu      - Choose a difficulty, then play
  list      - Show games and difficulty presets
  sequence  - Print generator draws
  reveal    - Print the initial board with hazards shown

Examples:
  minefield play
  minefield play --difficulty hard
  minefield play --size 10 --lives 3 --hazards 20
  minefield sequence --multiplier 13 --increment 1
  minefield reveal --multiplier 1 --increment 1 --hazards 10`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, closer, err := newLogger(flagLogFile, flagLogLevel)
		if err != nil {
			return err
		}
		logger, logCloser = l, closer
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minefield config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, classic, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagMultiplier, "multiplier", 0, "Generator multiplier, must be prime (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagIncrement, "increment", 0, "Generator increment (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: logs are discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sequenceCmd)
	rootCmd.AddCommand(revealCmd)
}

// newLogger builds the session logger. The TUI owns the terminal, so logs
// only go somewhere when a file is given.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "minefield",
		Level:           lvl,
	})
	return l, closer, nil
}

// configureGame passes the global flags to the minefield package before
// a game instance is reset.
func configureGame(overrides config.BoardOverrides) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	minefield.SetConfigPath(flagConfig)
	minefield.SetDifficultyPreset(flagDifficulty)
	minefield.SetBoardOverrides(overrides)
	return nil
}

// runtimeConfig probes the terminal and applies the generator flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Multiplier = flagMultiplier
	cfg.Increment = flagIncrement
	return cfg
}

// exitOnError prints err and exits, matching how every subcommand reports failure.
func exitOnError(prefix string, err error) {
	if err == nil {
		return
	}
	if prefix != "" {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", prefix, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logger.Error("command failed", "error", err)
	if logCloser != nil {
		logCloser.Close()
	}
	os.Exit(1)
}
