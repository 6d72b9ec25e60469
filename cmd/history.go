package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"interview-cli/internal/render"
	"interview-cli/internal/session"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse, search and manage saved snippets",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent snippets",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		snippets, err := session.GetRecent(db, historyLimit)
		if err != nil {
			fail("Failed to load history: %v", err)
		}
		printSnippetLines(snippets)
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search snippets by question, answer or tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		snippets, err := session.SearchSnippets(db, args[0])
		if err != nil {
			fail("Search failed: %v", err)
		}
		printSnippetLines(snippets)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one snippet with its restored workspace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		snippet := mustGetSnippet(db, args[0])
		width := outputWidth()

		fmt.Printf("Question: %s\n", snippet.Question)
		fmt.Printf("Saved:    %s\n", snippet.Timestamp.Format("2006-01-02 15:04"))
		if len(snippet.Tags) > 0 {
			fmt.Printf("Tags:     %v\n", snippet.Tags)
		}
		fmt.Println()
		fmt.Println(render.Restored(session.Restore(*snippet), width))
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a snippet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		snippet := mustGetSnippet(db, args[0])
		if err := session.DeleteSnippet(db, snippet.ID); err != nil {
			fail("Delete failed: %v", err)
		}
		fmt.Printf("Deleted %s\n", snippet.ID[:8])
	},
}

var historyReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Mark a snippet as reviewed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		snippet := mustGetSnippet(db, args[0])
		if err := session.MarkReviewed(db, snippet.ID); err != nil {
			fail("Review failed: %v", err)
		}
		fmt.Printf("Marked %s as reviewed\n", snippet.ID[:8])
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyReviewCmd)
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of snippets to list")
}

func mustOpenDB() *sql.DB {
	db, err := session.InitDB()
	if err != nil {
		fail("Failed to open session history: %v", err)
	}
	return db
}

func mustGetSnippet(db *sql.DB, id string) *session.Snippet {
	snippet, err := session.GetByID(db, id)
	if err != nil {
		fail("Lookup failed: %v", err)
	}
	if snippet == nil {
		fail("No snippet found for id %q", id)
	}
	return snippet
}

func printSnippetLines(snippets []session.Snippet) {
	if len(snippets) == 0 {
		fmt.Println("No snippets found.")
		return
	}
	width := outputWidth()
	for _, s := range snippets {
		fmt.Println(render.SnippetLine(s, width))
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m "+format+"\n", args...)
	os.Exit(1)
}
