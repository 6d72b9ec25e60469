package ai

import (
	"regexp"
	"strings"
)

// Captured question text often comes from screenshots or clipboard dumps of
// a real working environment, so it can carry live credentials. Everything
// is redacted before the text leaves the machine.

type secretPattern struct {
	regex       *regexp.Regexp
	replacement string
	name        string
}

type Sanitizer struct {
	patterns []*secretPattern
}

func DefaultSanitizer() *Sanitizer {
	return &Sanitizer{
		patterns: []*secretPattern{
			{
				regex:       regexp.MustCompile(`(?i)(api[_-]?key|apikey)[=:]["']?([a-zA-Z0-9_\-]{20,})["']?`),
				replacement: `$1=[REDACTED_API_KEY]`,
				name:        "API Key",
			},
			{
				regex:       regexp.MustCompile(`(?i)bearer\s+([a-zA-Z0-9_\-\.]+)`),
				replacement: `Bearer [REDACTED_TOKEN]`,
				name:        "Bearer Token",
			},
			{
				regex:       regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----[\s\S]*?-----END\s+(RSA\s+)?PRIVATE KEY-----`),
				replacement: `[REDACTED_PRIVATE_KEY]`,
				name:        "Private Key",
			},
			{
				regex:       regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`),
				replacement: `[REDACTED_GITHUB_TOKEN]`,
				name:        "GitHub PAT",
			},
			{
				regex:       regexp.MustCompile(`(?i)(password|passwd|pwd|secret|token)[=:]["']?([^\s"']{8,})["']?`),
				replacement: `$1=[REDACTED]`,
				name:        "Password/Secret",
			},
			{
				regex:       regexp.MustCompile(`(?i)(mongodb|postgresql|mysql|redis)://[^:]+:([^@]+)@`),
				replacement: `$1://[user]:[REDACTED]@`,
				name:        "Database Password",
			},
			{
				regex:       regexp.MustCompile(`eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`),
				replacement: `[REDACTED_JWT]`,
				name:        "JWT Token",
			},
		},
	}
}

func (s *Sanitizer) Sanitize(input string) string {
	result := input
	for _, pattern := range s.patterns {
		result = pattern.regex.ReplaceAllString(result, pattern.replacement)
	}
	return result
}

// SanitizeWithReport also names which pattern classes matched, so the CLI
// can warn the user about what was stripped from the outgoing question.
func (s *Sanitizer) SanitizeWithReport(input string) (sanitized string, found []string) {
	result := input
	for _, pattern := range s.patterns {
		if pattern.regex.MatchString(result) {
			found = append(found, pattern.name)
			result = pattern.regex.ReplaceAllString(result, pattern.replacement)
		}
	}
	return result, found
}

var globalSanitizer = DefaultSanitizer()

// MaxQuestionLen caps how much captured text is sent to a provider.
const MaxQuestionLen = 12000

// TruncateQuestion keeps the head and tail of an oversized capture; the
// middle of a long screen dump is usually boilerplate.
func TruncateQuestion(input string, maxLen int) string {
	if len(input) <= maxLen {
		return input
	}
	half := (maxLen - 20) / 2
	return input[:half] + "\n...[truncated]...\n" + input[len(input)-half:]
}

// PrepareQuestion sanitizes and bounds a captured question before it is
// embedded in a provider prompt.
func PrepareQuestion(input string) (string, []string) {
	sanitized, found := globalSanitizer.SanitizeWithReport(input)
	sanitized = TruncateQuestion(sanitized, MaxQuestionLen)
	return strings.TrimSpace(sanitized), found
}
