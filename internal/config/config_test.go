package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INTERVIEW_DATA_DIR", t.TempDir())

	cfg := Load()

	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAIModel == "" || cfg.AnthropicModel == "" || cfg.GeminiModel == "" {
		t.Error("default models should be set")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INTERVIEW_DATA_DIR", dir)

	file := []byte("provider: gemini\ngemini_key: from-file\nopenai_model: file-model\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), file, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("INTERVIEW_PROVIDER", "anthropic")
	t.Setenv("INTERVIEW_ANTHROPIC_KEY", "from-env")

	cfg := Load()

	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, env should win", cfg.Provider)
	}
	if cfg.GeminiKey != "from-file" {
		t.Errorf("GeminiKey = %q, want from-file", cfg.GeminiKey)
	}
	if cfg.OpenAIModel != "file-model" {
		t.Errorf("OpenAIModel = %q, want file-model", cfg.OpenAIModel)
	}
	if cfg.AnthropicKey != "from-env" {
		t.Errorf("AnthropicKey = %q, want from-env", cfg.AnthropicKey)
	}
}

func TestHasAnyKey(t *testing.T) {
	cfg := &Config{}
	if cfg.HasAnyKey() {
		t.Error("empty config should have no keys")
	}
	cfg.GeminiKey = "k"
	if !cfg.HasAnyKey() {
		t.Error("expected HasAnyKey with gemini key set")
	}
}
