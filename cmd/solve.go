package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"interview-cli/internal/ai"
	"interview-cli/internal/config"
	"interview-cli/internal/logger"
	"interview-cli/internal/render"
	"interview-cli/internal/response"
	"interview-cli/internal/session"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	solveFile   string
	solveTags   []string
	solveNoSave bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [question]",
	Short: "Answer a coding question in solution mode",
	Long: `Send a coding question to the configured AI provider and render the
parsed answer: code, reasoning bullets and complexity analysis.

The question is sanitized before it leaves the machine (API keys, passwords
and similar patterns are redacted) and the result is saved to the session
history unless --no-save is given.`,
	Example: `  interview solve "reverse a linked list in place"
  interview solve --file question.txt --tag lists --tag easy
  cat question.txt | interview solve`,
	Run: func(cmd *cobra.Command, args []string) {
		question := prepareInput(readQuestion(args, solveFile))
		raw := runPrompt(response.ModeSolution, question, ai.SolutionPrompt(question))

		sol := response.FormatSolution(raw)
		fmt.Println(render.Solution(sol, outputWidth()))

		if !solveNoSave {
			saveAnswer(question, raw, response.ModeSolution, solveTags, sol.Snapshot())
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveFile, "file", "", "Read the question from a file")
	solveCmd.Flags().StringArrayVar(&solveTags, "tag", nil, "Tag the saved snippet (repeatable)")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not store the answer in session history")
}

// readQuestion resolves the question text from args, a file, or stdin.
func readQuestion(args []string, file string) string {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m Failed to read question file: %v\n", err)
			os.Exit(1)
		}
		return strings.TrimSpace(string(data))
	}

	if len(args) > 0 {
		return strings.Join(args, " ")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		fmt.Fprintln(os.Stderr, "Error: provide a question as arguments, --file, or on stdin")
		os.Exit(1)
	}
	return strings.TrimSpace(string(data))
}

// prepareInput sanitizes and truncates text before it leaves the machine,
// warning on stderr about anything redacted.
func prepareInput(text string) string {
	sanitized, found := ai.PrepareQuestion(text)
	if len(found) > 0 {
		fmt.Fprintf(os.Stderr, "\033[33m⚠\033[0m Redacted before sending: %s\n", strings.Join(found, ", "))
	}
	return sanitized
}

// runPrompt dispatches to a provider with a spinner, logs the request, and
// returns the raw answer text.
func runPrompt(mode response.Mode, question, prompt string) string {
	cfg := config.Load()
	router := ai.NewRouter(cfg)
	if !router.HasClients() {
		fmt.Fprintln(os.Stderr, "\033[31m✗\033[0m No AI provider configured. Set OPENAI_API_KEY, ANTHROPIC_API_KEY or GEMINI_API_KEY.")
		os.Exit(1)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Thinking..."
	s.Start()
	start := time.Now()
	answer, provider, err := router.Answer(context.Background(), prompt)
	elapsed := time.Since(start).Milliseconds()
	s.Stop()

	if log, logErr := logger.New(cfg.DataDir); logErr == nil {
		_ = log.LogRequest(provider, string(mode), question, elapsed, err)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\033[90mAnswered by %s in %dms\033[0m\n\n", provider, elapsed)
	return answer
}

func saveAnswer(question, answer string, mode response.Mode, tags []string, ws *response.Workspace) {
	db, err := session.InitDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\033[33m⚠\033[0m Could not open session history: %v\n", err)
		return
	}
	defer db.Close()

	snippet := session.Snippet{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    answer,
		Mode:      mode,
		Timestamp: time.Now(),
		Tags:      tags,
		Workspace: ws,
	}

	if err := session.SaveSnippet(db, snippet); err != nil {
		fmt.Fprintf(os.Stderr, "\033[33m⚠\033[0m Could not save snippet: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "\033[90mSaved as %s\033[0m\n", snippet.ID[:8])
}

func outputWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 100
}
