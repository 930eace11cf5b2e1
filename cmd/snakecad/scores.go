package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/T0rrag/SnakeCAD/internal/platform/tui"
	"github.com/T0rrag/SnakeCAD/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse recorded high scores",
	Long: `Show recorded game results, best first.

By default an interactive table opens; use --plain for plain text output
suitable for piping.

Examples:
  snakecad scores
  snakecad scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print scores as plain text instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlainScores {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snakecad play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-7s  %-10s  %s\n", "Rank", "Score", "Length", "Outcome", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-10s  %s\n", "----", "-----", "------", "-------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-7d  %-10s  %s\n", i+1, entry.Score, entry.SnakeLen, entry.Outcome, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
