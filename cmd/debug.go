package cmd

import (
	"fmt"
	"os"
	"strings"

	"interview-cli/internal/ai"
	"interview-cli/internal/render"
	"interview-cli/internal/response"

	"github.com/spf13/cobra"
)

var (
	debugCodeFile  string
	debugErrorFile string
	debugTags      []string
	debugNoSave    bool
)

var debugCmd = &cobra.Command{
	Use:   "debug [code-file]",
	Short: "Debug failing code against its error output",
	Long: `Send a piece of code and its error output to the configured AI provider
and render the parsed diagnosis: issues found, specific fixes, why the
failures happen, and how to verify the repair.`,
	Example: `  interview debug --code-file solution.py --error-file pytest.log
  interview debug --code-file main.go`,
	Run: func(cmd *cobra.Command, args []string) {
		if debugCodeFile == "" && len(args) > 0 {
			debugCodeFile = args[0]
		}
		if debugCodeFile == "" {
			fmt.Fprintln(os.Stderr, "Error: provide the failing code via --code-file or as an argument")
			os.Exit(1)
		}

		code, err := os.ReadFile(debugCodeFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m Failed to read code file: %v\n", err)
			os.Exit(1)
		}

		var errOutput []byte
		if debugErrorFile != "" {
			errOutput, err = os.ReadFile(debugErrorFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m Failed to read error file: %v\n", err)
				os.Exit(1)
			}
		}

		question := debugQuestion(debugCodeFile, string(errOutput))
		prompt := ai.DebugPrompt(prepareInput(string(code)), prepareInput(string(errOutput)))
		raw := runPrompt(response.ModeDebug, question, prompt)

		dbg := response.FormatDebug(raw)
		fmt.Println(render.Debug(dbg, outputWidth()))

		if !debugNoSave {
			saveAnswer(question, raw, response.ModeDebug, debugTags, dbg.Snapshot())
		}
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().StringVar(&debugCodeFile, "code-file", "", "File containing the failing code (required)")
	debugCmd.Flags().StringVar(&debugErrorFile, "error-file", "", "File containing the error or test output")
	debugCmd.Flags().StringArrayVar(&debugTags, "tag", nil, "Tag the saved snippet (repeatable)")
	debugCmd.Flags().BoolVar(&debugNoSave, "no-save", false, "Do not store the answer in session history")
}

// debugQuestion builds the history entry title for a debug run.
func debugQuestion(codeFile, errOutput string) string {
	firstLine := ""
	for _, line := range strings.Split(errOutput, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			firstLine = t
			break
		}
	}
	if firstLine == "" {
		return "Debug " + codeFile
	}
	if len(firstLine) > 80 {
		firstLine = firstLine[:80]
	}
	return "Debug " + codeFile + ": " + firstLine
}
