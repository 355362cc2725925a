package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/popten/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var (
	scoresHeaderStyle = lipgloss.NewStyle().Bold(true)
	scoresDimStyle    = lipgloss.NewStyle().Faint(true)
	scoresBestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top scores recorded by finished rounds.

Only rounds that ran out of turns are recorded; quitting early does
not produce a score entry.

Examples:
  popten scores
  popten scores --limit 25
  popten scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println(scoresHeaderStyle.Render("High Scores"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'popten' to set the first high score!")
		return nil
	}

	header := fmt.Sprintf("  %-4s  %-7s  %-16s  %s", "Rank", "Score", "Date", "Seed")
	fmt.Println(scoresDimStyle.Render(header))
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-16s  %s\n", i+1, entry.Score, dateStr, entry.Seed)
	}

	high, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(scoresBestStyle.Render(fmt.Sprintf("Best: %d", high)))
	return nil
}
