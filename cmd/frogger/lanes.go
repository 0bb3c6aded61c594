package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var lanesCmd = &cobra.Command{
	Use:   "lanes",
	Short: "Show the spawn lanes in effect",
	Long: `Shows the lane table from the loaded config: where each lane spawns,
how fast it moves and on which ticks it fires.`,
	Args: cobra.NoArgs,
	Run:  runLanes,
}

func runLanes(_ *cobra.Command, _ []string) {
	rules := loadRules()
	policy, err := frogger.NewPolicy(rules.Config().Lanes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lanes := policy.Lanes()
	if len(lanes) == 0 {
		fmt.Println("No lanes configured.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range lanes {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-8s  %5s  %6s  %5s  %6s  %-10s  %s\n",
		maxNameLen, "Name", "Kind", "Y", "X", "Width", "DX", "Colour", "Periods")
	fmt.Printf("  %-*s  %-8s  %5s  %6s  %5s  %6s  %-10s  %s\n",
		maxNameLen, "----", "----", "-", "-", "-----", "--", "------", "-------")

	for _, l := range lanes {
		kind := "vehicle"
		if l.Platform {
			kind = "platform"
		}
		periods := make([]string, len(l.Periods))
		for i, p := range l.Periods {
			periods[i] = fmt.Sprint(p)
		}
		extra := ""
		if l.VariantEvery > 0 {
			extra = fmt.Sprintf("  (%s every %d)", l.Variant, l.VariantEvery)
		}
		s := l.Spec
		fmt.Printf("  %-*s  %-8s  %5g  %6g  %5g  %6g  %-10s  %s%s\n",
			maxNameLen, l.Name, kind, s.Y, s.X, s.Width, s.DX, s.Colour, strings.Join(periods, ","), extra)
	}
}
