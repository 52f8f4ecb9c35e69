package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-choir/internal/registry"
	"github.com/vovakirdan/tui-choir/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the given mode (default: choir).

Examples:
  choir scores
  choir scores choir_endless
  choir scores choir --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "choir"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'choir list' to see available modes)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'choir play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Rounds", "Mistakes", "Singer", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "------", "--------", "------", "----")

	for i, e := range scores {
		singer := e.Player
		if singer == "" {
			singer = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-6d  %-8d  %-12s  %s\n",
			i+1, e.Score, e.Rounds, e.Mistakes, singer, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.1f  |  Longest: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LongestGame)
	}
	return nil
}
