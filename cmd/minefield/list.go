package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and difficulty presets",
	Long:  `Shows the registered games and the board each difficulty preset produces.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		writeList(os.Stdout, registry.List(), config.Presets())
	},
}

func writeList(w io.Writer, games []registry.GameInfo, presets []config.PresetInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle")
	fmt.Fprintln(tw, "  --\t-----")
	for _, g := range games {
		fmt.Fprintf(tw, "  %s\t%s\n", g.ID, g.Title)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Difficulty presets:")
	fmt.Fprintln(w)
	fmt.Fprintln(tw, "  Preset\tBoard\tLives\tHazards")
	fmt.Fprintln(tw, "  ------\t-----\t-----\t-------")
	for _, p := range presets {
		fmt.Fprintf(tw, "  %s\t%dx%d\t%d\t%d\n", p.Preset, p.Size, p.Size, p.Lives, p.Hazards)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'minefield play --difficulty <preset>' to play.")
}
