package ai

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	answer    string
	timestamp time.Time
}

// AnswerCache is a small LRU with TTL keyed by hashed prompt. Re-asking the
// same question during a session should not burn another API call.
type AnswerCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	keys    []string
	maxSize int
	ttl     time.Duration
}

func NewAnswerCache(maxSize int, ttl time.Duration) *AnswerCache {
	return &AnswerCache{
		entries: make(map[string]cacheEntry),
		keys:    make([]string, 0),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func hashPrompt(prompt string) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(prompt))))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (c *AnswerCache) Get(prompt string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := hashPrompt(prompt)
	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}

	if time.Since(entry.timestamp) > c.ttl {
		return "", false
	}

	return entry.answer, true
}

func (c *AnswerCache) Set(prompt, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := hashPrompt(prompt)

	if _, exists := c.entries[key]; exists {
		c.entries[key] = cacheEntry{answer: answer, timestamp: time.Now()}
		c.moveToEnd(key)
		return
	}

	if len(c.keys) >= c.maxSize {
		oldest := c.keys[0]
		delete(c.entries, oldest)
		c.keys = c.keys[1:]
	}

	c.entries[key] = cacheEntry{answer: answer, timestamp: time.Now()}
	c.keys = append(c.keys, key)
}

func (c *AnswerCache) moveToEnd(key string) {
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			c.keys = append(c.keys, key)
			return
		}
	}
}

func (c *AnswerCache) Stats() (size int, capacity int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries), c.maxSize
}

func (c *AnswerCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.keys = make([]string, 0)
}
