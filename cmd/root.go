package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview",
	Short: "Coding interview assistant with parsed AI answers and session history",
	Long: `interview sends coding questions to an AI provider (OpenAI, Anthropic or
Gemini), parses the loosely formatted answer into structured sections, and
keeps every question/answer pair in a searchable local session history.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
