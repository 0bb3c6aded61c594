package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/session"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Frogger in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/Up, A/Left, S/Down, D/Right  - Hop one cell
  Space                          - Restart (after game over)
  Tab                            - Toggle leaderboard
  ?                              - Toggle full help
  Q/Ctrl+C                       - Quit

Scores are kept until you quit; the leaderboard is printed on exit.

Examples:
  frogger play
  frogger play --player alice
  frogger play --config ./my-frogger.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name shown on the leaderboard")
}

func runPlay(_ *cobra.Command, _ []string) {
	rules := loadRules()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: leaderboard unavailable: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Logging to the terminal would tear the alt screen, so play stays quiet.
	sess, err := session.New(session.Options{
		Rules:  rules,
		Store:  store,
		Player: flagPlayer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := sess.Start(ctx); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(sess, cfg)
	cancel()
	sess.Stop()

	if store != nil {
		printScores(store, sess.World().Score)
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// printScores prints the runs recorded during this sitting.
func printScores(store *storage.Store, current int) {
	runs, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Printf("No finished runs. Final score: %d\n", current)
		return
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Score", "Level")
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "-----", "-----")
	for i, run := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %d\n", i+1, run.Player, run.Score, run.Level)
	}
	fmt.Println()
}
