package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`

	OpenAIKey   string `yaml:"openai_key"`
	OpenAIModel string `yaml:"openai_model"`

	AnthropicKey   string `yaml:"anthropic_key"`
	AnthropicModel string `yaml:"anthropic_model"`

	GeminiKey   string `yaml:"gemini_key"`
	GeminiModel string `yaml:"gemini_model"`

	DataDir string `yaml:"data_dir"`
}

// Load builds the config from defaults, then ~/.interview/config.yaml, then
// environment variables. Env always wins so a key can be overridden per
// invocation.
func Load() *Config {
	cfg := &Config{
		Provider:       "openai",
		OpenAIModel:    "gpt-4o-mini",
		AnthropicModel: "claude-sonnet-4-20250514",
		GeminiModel:    "gemini-2.0-flash",
	}

	home, _ := os.UserHomeDir()
	cfg.DataDir = filepath.Join(home, ".interview")
	if val := os.Getenv("INTERVIEW_DATA_DIR"); val != "" {
		cfg.DataDir = val
	}

	loadFile(cfg, filepath.Join(cfg.DataDir, "config.yaml"))
	loadEnv(cfg)

	return cfg
}

func loadFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return
	}

	if file.Provider != "" {
		cfg.Provider = file.Provider
	}
	if file.OpenAIKey != "" {
		cfg.OpenAIKey = file.OpenAIKey
	}
	if file.OpenAIModel != "" {
		cfg.OpenAIModel = file.OpenAIModel
	}
	if file.AnthropicKey != "" {
		cfg.AnthropicKey = file.AnthropicKey
	}
	if file.AnthropicModel != "" {
		cfg.AnthropicModel = file.AnthropicModel
	}
	if file.GeminiKey != "" {
		cfg.GeminiKey = file.GeminiKey
	}
	if file.GeminiModel != "" {
		cfg.GeminiModel = file.GeminiModel
	}
}

func loadEnv(cfg *Config) {
	if val := os.Getenv("INTERVIEW_PROVIDER"); val != "" {
		cfg.Provider = val
	}

	if val := os.Getenv("INTERVIEW_OPENAI_KEY"); val != "" {
		cfg.OpenAIKey = val
	} else if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		cfg.OpenAIKey = val
	}
	if val := os.Getenv("INTERVIEW_OPENAI_MODEL"); val != "" {
		cfg.OpenAIModel = val
	}

	if val := os.Getenv("INTERVIEW_ANTHROPIC_KEY"); val != "" {
		cfg.AnthropicKey = val
	} else if val := os.Getenv("ANTHROPIC_API_KEY"); val != "" {
		cfg.AnthropicKey = val
	}
	if val := os.Getenv("INTERVIEW_ANTHROPIC_MODEL"); val != "" {
		cfg.AnthropicModel = val
	}

	if val := os.Getenv("INTERVIEW_GEMINI_KEY"); val != "" {
		cfg.GeminiKey = val
	} else if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		cfg.GeminiKey = val
	}
	if val := os.Getenv("INTERVIEW_GEMINI_MODEL"); val != "" {
		cfg.GeminiModel = val
	}
}

// HasAnyKey reports whether at least one provider is usable.
func (c *Config) HasAnyKey() bool {
	return c.OpenAIKey != "" || c.AnthropicKey != "" || c.GeminiKey != ""
}
