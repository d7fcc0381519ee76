package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beer-arcade/internal/config"
	"github.com/vovakirdan/beer-arcade/internal/registry"
	"github.com/vovakirdan/beer-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, the stored
best score and statistics over all finished runs.

Examples:
  beerarcade scores runner
  beerarcade scores pour
  beerarcade scores pour --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'beerarcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'beerarcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show stored best
	fmt.Println()
	if key := bestKey(gameID); key != "" {
		if best, err := store.Get(key); err == nil {
			fmt.Printf("Best: %d\n", best)
		}
	}

	printRunStats(store, gameID)
}

// bestKey returns the key the game stores its best score under.
func bestKey(gameID string) string {
	cfg, _, _ := loadGameConfig(gameID, flagConfig, "")
	switch c := cfg.(type) {
	case config.RunnerConfig:
		return c.Score.BestKey
	case config.PourConfig:
		return c.BestKey
	}
	return ""
}

func printRunStats(store *storage.Store, gameID string) {
	stats, err := store.GetGameStats(gameID)
	if err != nil || stats.GamesCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Avg: %.1f  Best combo: %d  Time played: %s\n",
		stats.GamesCount, stats.AvgScore, stats.BestCombo, stats.TotalTime.Round(time.Second))

	tiers, err := store.TierCounts(gameID)
	if err != nil || len(tiers) == 0 {
		return
	}

	names := make([]string, 0, len(tiers))
	for name := range tiers {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return tiers[names[i]] > tiers[names[j]] })

	fmt.Println("Deepest tier reached:")
	for _, name := range names {
		fmt.Printf("  %-10s %d\n", name, tiers[name])
	}
}
