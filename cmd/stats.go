package cmd

import (
	"fmt"

	"interview-cli/internal/response"
	"interview-cli/internal/stats"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics and review suggestions",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		summary, err := stats.NewAnalyzer(db).Summarize()
		if err != nil {
			fail("Failed to read statistics: %v", err)
		}

		if summary.Total == 0 {
			fmt.Println("No snippets saved yet.")
			return
		}

		fmt.Printf("Snippets:  %d (%d solution, %d debug)\n",
			summary.Total,
			summary.ByMode[response.ModeSolution],
			summary.ByMode[response.ModeDebug])
		fmt.Printf("Reviewed:  %d (%.0f%%)\n", summary.Reviewed, summary.ReviewRate*100)
		if !summary.LastSaved.IsZero() {
			fmt.Printf("Last save: %s\n", summary.LastSaved.Format("2006-01-02 15:04"))
		}
		if len(summary.TopTags) > 0 {
			fmt.Println("\nTop tags:")
			for _, tc := range summary.TopTags {
				fmt.Printf("  %-16s %d\n", tc.Tag, tc.Count)
			}
		}

		if sugs := stats.Suggestions(summary); len(sugs) > 0 {
			fmt.Println("\nSuggestions:")
			for _, s := range sugs {
				fmt.Printf("  [%s] %s\n", s.Severity, s.Message)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
