package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var flagScoreLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, followed by
its most recent two-player matches if any were recorded.

Examples:
  arcade scores invaders
  arcade scores pong --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of rows to show")
}

func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	matches, err := store.RecentMatches(gameID, flagScoreLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", gameTitle(gameID))
	fmt.Println()

	if len(scores) == 0 && len(matches) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	if len(scores) > 0 {
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
		fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d (level %d)  Games: %d  Average: %.0f\n",
				stats.HighScore, stats.BestLevel, stats.GamesCount, stats.AvgScore)
		}
	}

	if len(matches) > 0 {
		if len(scores) > 0 {
			fmt.Println()
		}
		fmt.Println("Recent matches:")
		fmt.Printf("  %-5s  %-5s  %-6s  %-6s  %s\n", "P1", "P2", "Winner", "Time", "Date")
		fmt.Printf("  %-5s  %-5s  %-6s  %-6s  %s\n", "--", "--", "------", "----", "----")
		for _, m := range matches {
			winner := "-"
			if m.Winner > 0 {
				winner = fmt.Sprintf("P%d", m.Winner)
			}
			fmt.Printf("  %-5d  %-5d  %-6s  %2d:%02d   %s\n",
				m.Score1, m.Score2, winner, m.Duration/60, m.Duration%60, m.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
