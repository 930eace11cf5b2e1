package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/T0rrag/SnakeCAD/internal/config"
	"github.com/T0rrag/SnakeCAD/internal/core"
	"github.com/T0rrag/SnakeCAD/internal/game"
	"github.com/T0rrag/SnakeCAD/internal/platform/tui"
	"github.com/T0rrag/SnakeCAD/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a snake game in the terminal.

Controls:
  W/A/S/D or arrows - Steer
  R                 - Restart (after the game ends)
  Q/Ctrl+C          - Quit

Examples:
  snakecad play
  snakecad play --seed 12345
  snakecad play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: gameCfg.TickInterval(),
		Seed:         seed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	session := game.NewSession(gameCfg, cfg.Seed)
	runErr := tui.Run(session, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	// Exit message depends on how the session ended. A quit is a clean
	// exit and gets no final score.
	switch session.Phase() {
	case game.PhaseGameOver:
		fmt.Printf("Game over! Final score: %d\n", session.Score())
	case game.PhaseWon:
		fmt.Printf("Board filled! Final score: %d\n", session.Score())
	default:
		fmt.Println("Thanks for playing.")
	}
}
