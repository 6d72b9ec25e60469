package cmd

import (
	"fmt"
	"os"

	"interview-cli/internal/session"
	"interview-cli/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse session history in an interactive terminal UI",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := session.InitDB()
		if err != nil {
			fail("Failed to open session history: %v", err)
		}
		defer db.Close()

		p := tea.NewProgram(tui.InitialModel(db), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m UI error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
