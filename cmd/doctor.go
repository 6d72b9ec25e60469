package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"interview-cli/internal/ai"
	"interview-cli/internal/config"
	"interview-cli/internal/session"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, provider keys and the session database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		healthy := true

		fmt.Println("interview doctor")
		fmt.Println()

		check("OpenAI key", cfg.OpenAIKey != "", "set OPENAI_API_KEY or openai_key in config.yaml")
		check("Anthropic key", cfg.AnthropicKey != "", "set ANTHROPIC_API_KEY or anthropic_key in config.yaml")
		check("Gemini key", cfg.GeminiKey != "", "set GEMINI_API_KEY or gemini_key in config.yaml")

		if !cfg.HasAnyKey() {
			fmt.Println("\033[31m✗\033[0m No provider configured; solve and debug will fail")
			healthy = false
		} else {
			router := ai.NewRouter(cfg)
			fmt.Printf("\033[32m✓\033[0m Provider order: %s\n", strings.Join(router.Providers(), " > "))
		}

		if err := checkDataDir(cfg.DataDir); err != nil {
			fmt.Printf("\033[31m✗\033[0m Data dir %s not writable: %v\n", cfg.DataDir, err)
			healthy = false
		} else {
			fmt.Printf("\033[32m✓\033[0m Data dir writable: %s\n", cfg.DataDir)
		}

		db, err := session.InitDB()
		if err != nil {
			fmt.Printf("\033[31m✗\033[0m Session database: %v\n", err)
			healthy = false
		} else {
			defer db.Close()
			counts, err := session.CountByMode(db)
			if err != nil {
				fmt.Printf("\033[31m✗\033[0m Session database query failed: %v\n", err)
				healthy = false
			} else {
				total := 0
				for _, n := range counts {
					total += n
				}
				fmt.Printf("\033[32m✓\033[0m Session database ok (%d snippets)\n", total)
			}
		}

		fmt.Println()
		if healthy {
			fmt.Println("All checks passed.")
		} else {
			fmt.Println("Some checks failed.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func check(name string, ok bool, hint string) {
	if ok {
		fmt.Printf("\033[32m✓\033[0m %s\n", name)
	} else {
		fmt.Printf("\033[33m-\033[0m %s missing (%s)\n", name, hint)
	}
}

func checkDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}
