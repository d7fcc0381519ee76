package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beer-arcade/internal/platform/tui"
	"github.com/vovakirdan/beer-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up     - Jump (runner) / drink (pour)
  Left/Right   - Tilt the glass (pour), the mouse works too
  Enter        - Start
  P            - Pause
  R            - Restart (after game over)
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start sober, beers hit softer and wear off faster
  normal - Configured start, gain and decay
  hard   - Start half drunk, beers hit harder and wear off slower
  fixed  - No progression, stays at config's starting level

Examples:
  beerarcade play runner
  beerarcade play pour --difficulty easy
  beerarcade play runner --difficulty fixed --seed 42
  beerarcade play pour --config ./my-pour.yaml --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'beerarcade list' to see available games.")
		os.Exit(1)
	}

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := configureGame(gameID, sess.log); err != nil {
		sess.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		sess.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	_, runErr := tui.Run(game, runtimeConfig(), sess.options())

	// Close collaborators before potential exit
	sess.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
