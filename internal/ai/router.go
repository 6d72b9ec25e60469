package ai

import (
	"context"
	"fmt"
	"time"

	"interview-cli/internal/config"
)

// Router dispatches to the configured provider and falls back through the
// remaining ones in order when a call fails.
type Router struct {
	clients []Client
	cache   *AnswerCache
}

var defaultCache = NewAnswerCache(50, 10*time.Minute)

// NewRouter orders the configured clients with cfg.Provider first. Clients
// without keys are skipped entirely.
func NewRouter(cfg *config.Config) *Router {
	byName := map[string]Client{}
	if c := NewOpenAIClient(cfg); c != nil {
		byName[c.Name()] = c
	}
	if c := NewAnthropicClient(cfg); c != nil {
		byName[c.Name()] = c
	}
	if c := NewGeminiClient(cfg); c != nil {
		byName[c.Name()] = c
	}

	var clients []Client
	if preferred, ok := byName[cfg.Provider]; ok {
		clients = append(clients, preferred)
		delete(byName, cfg.Provider)
	}
	for _, name := range []string{"openai", "anthropic", "gemini"} {
		if c, ok := byName[name]; ok {
			clients = append(clients, c)
		}
	}

	return &Router{clients: clients, cache: defaultCache}
}

// NewRouterWith builds a router over explicit clients, bypassing config.
// Used by tests and by callers that already hold a client.
func NewRouterWith(cache *AnswerCache, clients ...Client) *Router {
	if cache == nil {
		cache = NewAnswerCache(50, 10*time.Minute)
	}
	return &Router{clients: clients, cache: cache}
}

// HasClients reports whether any provider is configured.
func (r *Router) HasClients() bool { return len(r.clients) > 0 }

// Providers lists the configured provider names in fallback order.
func (r *Router) Providers() []string {
	names := make([]string, len(r.clients))
	for i, c := range r.clients {
		names[i] = c.Name()
	}
	return names
}

// Answer tries each provider in order until one succeeds. The provider name
// that produced the answer is returned for logging.
func (r *Router) Answer(ctx context.Context, prompt string) (answer, provider string, err error) {
	if len(r.clients) == 0 {
		return "", "", fmt.Errorf("no AI provider configured: set an API key for OpenAI, Anthropic or Gemini")
	}

	if cached, ok := r.cache.Get(prompt); ok {
		return cached, "cache", nil
	}

	var lastErr error
	for _, c := range r.clients {
		answer, err := c.Answer(ctx, prompt)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", c.Name(), err)
			continue
		}
		r.cache.Set(prompt, answer)
		return answer, c.Name(), nil
	}

	return "", "", fmt.Errorf("all providers failed: %w", lastErr)
}

func (r *Router) CacheStats() (size int, capacity int) {
	return r.cache.Stats()
}

func (r *Router) ClearCache() {
	r.cache.Clear()
}
