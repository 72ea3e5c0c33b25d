// connect4 is a terminal Connect Four game for two players sharing a keyboard.
//
// Usage:
//
//	connect4 list                  - List board variants
//	connect4 play [variant]        - Play a game
//	connect4 menu                  - Pick a board interactively
//	connect4 results               - Show recently finished games
//	connect4 standings [variant]   - Show wins, losses and ties per player
//	connect4 serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.connect4, ./configs)
//	--db <path>         - Results database (default: ~/.connect4/results.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	_ "github.com/vovakirdan/connect4/internal/games/connect4" // registers variants
	"github.com/vovakirdan/connect4/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four in your terminal",
	Long: `Connect Four for two players sharing one keyboard.

Players take turns dropping discs into columns; the first to line up
four in a row, column or diagonal wins. A full board is a tie.

Available commands:
  list       - Show board variants
  play       - Play a game directly
  menu       - Interactive board picker
  results    - Recently finished games
  standings  - Wins, losses and ties per player
  serve      - Start SSH server for remote play

Examples:
  connect4 play
  connect4 play wide
  connect4 play --height 5 --width 5
  connect4 menu
  connect4 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.connect4/results.db", "Path to results database (empty disables recording)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the YAML config; the caller applies flag overrides
// and validates.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the results database. Failure is a warning:
// games still work without recording.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

// terminalSize returns the current terminal size, or the defaults
// when stdout is not a terminal.
func terminalSize() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// requireTerminal exits when stdin is not interactive.
func requireTerminal(command string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: %s needs an interactive terminal\n", command)
		os.Exit(1)
	}
}

// mustLogger wraps newLogger for Run handlers.
func mustLogger(interactive bool) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}
