package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/platform/tui"
	"github.com/vovakirdan/connect4/internal/storage"
)

var standingsCmd = &cobra.Command{
	Use:   "standings [variant]",
	Short: "Show wins, losses and ties per player",
	Long: `Open an interactive table of recorded results per player.
Tab switches between all boards and each recorded variant.

Examples:
  connect4 standings
  connect4 standings classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStandings,
}

func runStandings(_ *cobra.Command, args []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no results database (--db is empty)")
		os.Exit(1)
	}

	variant := ""
	if len(args) > 0 {
		variant = args[0]
	}

	requireTerminal("standings")
	logger, closeLog := mustLogger(true)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunStandings(store, variant, logger)
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error showing standings: %v\n", runErr)
		os.Exit(1)
	}
}
