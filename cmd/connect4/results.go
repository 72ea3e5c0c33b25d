package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/storage"
)

var flagLimit int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recently finished games",
	Long: `Display the most recently finished games, newest first.

Examples:
  connect4 results
  connect4 results --limit 50`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
}

func runResults(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no results database (--db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	results, err := store.RecentResults(flagLimit)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game with 'connect4 play' to see it here!")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-25s  %-12s  %s\n", "Date", "Board", "Players", "Winner", "Moves")
	fmt.Printf("  %-16s  %-10s  %-25s  %-12s  %s\n", "----", "-----", "-------", "------", "-----")

	for _, r := range results {
		winner := r.WinnerName()
		if r.Winner == storage.WinnerNone {
			winner = "(tie)"
		}
		fmt.Printf("  %-16s  %-10s  %-25s  %-12s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Variant,
			r.Player1+" vs "+r.Player2,
			winner,
			r.Moves,
		)
	}
}
