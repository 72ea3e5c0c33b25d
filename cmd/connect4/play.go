package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/platform/tui"
	"github.com/vovakirdan/connect4/internal/registry"
)

var (
	flagHeight  int
	flagWidth   int
	flagP1Name  string
	flagP1Color string
	flagP2Name  string
	flagP2Color string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a hot-seat game on the given board variant.
Without a variant, the configured one is used (classic by default).

Controls:
  Left/Right, h/l   - Move the column cursor
  Enter/Space/Down  - Drop a disc
  1-9               - Drop into that column
  R                 - New game (after game over)
  ?                 - More keys
  Q/Ctrl+C/Esc      - Quit

Examples:
  connect4 play
  connect4 play wide
  connect4 play --height 5 --width 6
  connect4 play --p1-name Ann --p1-color orange --p2-name Bob --p2-color "#3498db"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board rows (overrides the variant)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board columns (overrides the variant)")
	playCmd.Flags().StringVar(&flagP1Name, "p1-name", "", "Player 1 name")
	playCmd.Flags().StringVar(&flagP1Color, "p1-color", "", "Player 1 color (name, 0-255 or #hex)")
	playCmd.Flags().StringVar(&flagP2Name, "p2-name", "", "Player 2 name")
	playCmd.Flags().StringVar(&flagP2Color, "p2-color", "", "Player 2 color (name, 0-255 or #hex)")
}

// applyPlayFlags overrides config values with explicitly set flags.
// An explicit board dimension must be positive.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		cfg.Variant = args[0]
		cfg.Board = config.BoardConfig{}
	}

	flags := cmd.Flags()
	if flags.Changed("height") && flagHeight <= 0 {
		return fmt.Errorf("--height: %w, got %d", connect4.ErrInvalidDimension, flagHeight)
	}
	if flags.Changed("width") && flagWidth <= 0 {
		return fmt.Errorf("--width: %w, got %d", connect4.ErrInvalidDimension, flagWidth)
	}
	if flags.Changed("height") || flags.Changed("width") {
		base, err := cfg.ResolveVariant()
		if err != nil {
			base = registry.Custom(connect4.DefaultHeight, connect4.DefaultWidth)
		}
		cfg.Board = config.BoardConfig{Height: base.Height, Width: base.Width}
		if flags.Changed("height") {
			cfg.Board.Height = flagHeight
		}
		if flags.Changed("width") {
			cfg.Board.Width = flagWidth
		}
	}
	if flags.Changed("p1-name") {
		cfg.Players.Player1.Name = flagP1Name
	}
	if flags.Changed("p1-color") {
		cfg.Players.Player1.Color = flagP1Color
	}
	if flags.Changed("p2-name") {
		cfg.Players.Player2.Name = flagP2Name
	}
	if flags.Changed("p2-color") {
		cfg.Players.Player2.Color = flagP2Color
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if err := applyPlayFlags(cmd, &cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'connect4 list' to see board variants.")
		os.Exit(1)
	}

	variant, err := cfg.ResolveVariant()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	requireTerminal("play")
	logger, closeLog := mustLogger(true)
	defer closeLog()

	store := openStore(logger)
	opts := tui.GameOptions{
		Variant: variant,
		Players: tui.PlayersFromConfig(cfg),
		UI:      cfg.UI,
		Logger:  logger,
		Screen:  terminalSize(),
	}
	if store != nil {
		opts.Recorder = store
	}

	// Run the game
	runErr := tui.RunGame(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
