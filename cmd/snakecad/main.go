// snakecad is a terminal snake simulation.
//
// Usage:
//
//	snakecad play            - Play a game
//	snakecad scores          - Browse recorded high scores
//	snakecad serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snakecad/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakecad",
	Short: "SnakeCAD - Play snake in your terminal",
	Long: `SnakeCAD is a terminal snake simulation: steer with WASD or the
arrow keys, eat food to grow, avoid the walls and your own body.

Available commands:
  play     - Play a game
  scores   - Browse recorded high scores
  serve    - Start SSH server for remote play

Examples:
  snakecad play
  snakecad play --config ./my-board.yaml
  snakecad scores
  snakecad serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakecad/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
