// frogger is the classic river-crossing game for the terminal, SSH and the browser.
//
// Usage:
//
//	frogger play             - Play in this terminal
//	frogger serve            - Start SSH server for remote play
//	frogger web              - Serve the browser version
//	frogger lanes            - Show the spawn lanes in effect
//	frogger config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search ~/.frogger/configs, ./configs)
//	--fps <rate>       - Override the tick rate (default: from config)
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road and the river in your terminal",
	Long: `Frogger is the classic arcade crossing game. Dodge the traffic, ride the
logs and turtles across the river, and fill the goal slots at the top.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the browser version
  lanes    - Show the spawn lanes in effect
  config   - Print the effective configuration

Examples:
  frogger play
  frogger play --fps 60
  frogger serve --ssh :2222
  frogger web --addr :8080
  frogger config > my-frogger.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(lanesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config and applies flag overrides.
func loadConfig() (config.FroggerConfig, error) {
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}

// loadRules loads the config or exits.
func loadRules() *frogger.Rules {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	rules, err := frogger.NewRules(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return rules
}

// newLogger returns a stderr logger at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
