package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/platform/web"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve Frogger to browsers",
	Long: `Start an HTTP server with a browser version of the game.

Open the address in a browser and play with W/A/S/D and Space.
Every tab gets its own game; all tabs share one in-memory leaderboard.

Endpoints:
  GET /         - Game page
  GET /play     - Websocket frame feed
  GET /scores   - Top 10 runs as JSON
  GET /healthz  - Health and active game count

Examples:
  frogger web
  frogger web --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	rules := loadRules()
	logger := newLogger("frogger-web")

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("leaderboard unavailable", "error", err)
		store = nil
	}

	server := web.NewServer(web.Config{
		Address: flagWebAddr,
		Rules:   rules,
		Store:   store,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving Frogger on http://localhost%s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	err = server.ListenAndServe(ctx)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
