package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/rng"
)

var (
	flagFrom  int
	flagTo    int
	flagCount int
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Print generator draws",
	Long: `Print values drawn from the hazard generator. The same multiplier and
increment always print the same values, which makes it easy to check
what a board will look like before playing it.

Examples:
  minefield sequence
  minefield sequence --multiplier 13 --increment 1 --from 1 --to 63 --count 20`,
	Args: cobra.NoArgs,
	Run:  runSequence,
}

func init() {
	sequenceCmd.Flags().IntVar(&flagFrom, "from", 0, "Lower bound (inclusive)")
	sequenceCmd.Flags().IntVar(&flagTo, "to", 64, "Upper bound (exclusive)")
	sequenceCmd.Flags().IntVar(&flagCount, "count", 30, "Number of values to draw")
}

func runSequence(_ *cobra.Command, _ []string) {
	gen, err := newGenerator()
	exitOnError("", err)
	exitOnError("", writeSequence(os.Stdout, gen, flagFrom, flagTo, flagCount))
}

// newGenerator builds a generator from the loaded config and the global flags.
func newGenerator() (*rng.Generator, error) {
	cfg, err := config.LoadMinefield(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagMultiplier > 0 {
		cfg.Generator.Multiplier = flagMultiplier
	}
	if flagIncrement > 0 {
		cfg.Generator.Increment = flagIncrement
	}
	return rng.New(cfg.Generator.Multiplier, cfg.Generator.Increment)
}

// writeSequence prints count draws in [from, to) on one line.
func writeSequence(w io.Writer, gen *rng.Generator, from, to, count int) error {
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}

	values := make([]string, 0, count)
	for range count {
		v, err := gen.NextValue(from, to)
		if err != nil {
			return err
		}
		values = append(values, fmt.Sprint(v))
	}

	fmt.Fprintf(w, "Random numbers between %d and %d (multiplier %d, increment %d)\n",
		from, to, gen.Multiplier(), gen.Increment())
	fmt.Fprintln(w, strings.Join(values, " "))
	return nil
}
