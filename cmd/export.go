package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"interview-cli/internal/session"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved snippets as markdown or JSON",
	Example: `  interview export -n 50 --out review.md
  interview export --format json --out snippets.json`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		snippets, err := session.GetRecent(db, exportLimit)
		if err != nil {
			fail("Failed to load history: %v", err)
		}
		if len(snippets) == 0 {
			fmt.Println("No snippets to export.")
			return
		}

		var out string
		switch exportFormat {
		case "json":
			data, err := json.MarshalIndent(snippets, "", "  ")
			if err != nil {
				fail("Failed to encode snippets: %v", err)
			}
			out = string(data)
		case "markdown", "md":
			out = exportMarkdown(snippets)
		default:
			fail("Unknown format %q (want markdown or json)", exportFormat)
		}

		if exportOut == "" {
			fmt.Println(out)
			return
		}
		if err := os.WriteFile(exportOut, []byte(out), 0644); err != nil {
			fail("Failed to write %s: %v", exportOut, err)
		}
		fmt.Printf("Exported %d snippets to %s\n", len(snippets), exportOut)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "markdown", "Output format: markdown or json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
	exportCmd.Flags().IntVarP(&exportLimit, "limit", "n", 100, "Maximum number of snippets to export")
}

func exportMarkdown(snippets []session.Snippet) string {
	var b strings.Builder
	b.WriteString("# Interview Session Export\n")

	for _, s := range snippets {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Question)
		fmt.Fprintf(&b, "- Mode: %s\n", s.Mode)
		fmt.Fprintf(&b, "- Saved: %s\n", s.Timestamp.Format("2006-01-02 15:04"))
		if len(s.Tags) > 0 {
			fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(s.Tags, ", "))
		}
		if s.Reviewed {
			b.WriteString("- Reviewed: yes\n")
		}

		r := session.Restore(s)
		if r.Code != "" {
			fmt.Fprintf(&b, "\n```\n%s\n```\n", strings.TrimRight(r.Code, "\n"))
		}
		writeMarkdownList(&b, "Thoughts", r.Thoughts)
		writeMarkdownList(&b, "Issues", r.Issues)
		writeMarkdownList(&b, "Fixes", r.Fixes)
		writeMarkdownList(&b, "Why", r.Why)
		writeMarkdownList(&b, "Next Steps", r.NextSteps)
		fmt.Fprintf(&b, "\n**Time:** %s  \n**Space:** %s\n", r.TimeComplexity, r.SpaceComplexity)
	}

	return b.String()
}

func writeMarkdownList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n**%s:**\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
