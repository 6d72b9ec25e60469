// Package response turns free-text LLM answers into structured, renderable
// records. Every formatter is total: unparseable sections fall back to fixed
// defaults instead of failing, so the interactive flow never breaks on a
// badly formatted answer.
package response

import (
	"regexp"
	"strings"
)

// Mode distinguishes the two answer shapes the assistant produces.
type Mode string

const (
	ModeSolution Mode = "solution"
	ModeDebug    Mode = "debug"
)

const (
	// DebugComplexity is the fixed complexity sentinel for debug answers.
	DebugComplexity = "N/A - Debug mode"

	// DefaultThought is used when no thoughts section can be located.
	DefaultThought = "Solution approach based on efficiency and readability"

	// DefaultNextStep is used when a debug answer has no verify section.
	DefaultNextStep = "Re-run failing tests and compare with expected output after applying fixes."

	defaultTimeComplexity  = "O(n) - Linear time because the input is traversed once, with constant-time hash map lookups at each step."
	defaultSpaceComplexity = "O(n) - Linear space because the hash map can hold up to one entry per input element in the worst case."
)

// Solution is a parsed solution-mode answer. Thoughts is never empty.
type Solution struct {
	Code            string   `json:"code"`
	Thoughts        []string `json:"thoughts"`
	TimeComplexity  string   `json:"time_complexity"`
	SpaceComplexity string   `json:"space_complexity"`
}

// Debug is a parsed debug-mode answer. Complexity fields always carry the
// DebugComplexity sentinel.
type Debug struct {
	Code            string   `json:"code"`
	Issues          []string `json:"issues"`
	Fixes           []string `json:"fixes"`
	Why             []string `json:"why"`
	NextSteps       []string `json:"next_steps"`
	TimeComplexity  string   `json:"time_complexity"`
	SpaceComplexity string   `json:"space_complexity"`
}

// Workspace is the persisted snapshot of a rendered answer, attached to a
// saved snippet. Every field except Type is optional; restoration fills the
// gaps from the snippet itself.
type Workspace struct {
	Type            Mode     `json:"type"`
	Code            string   `json:"code,omitempty"`
	Thoughts        []string `json:"thoughts,omitempty"`
	Issues          []string `json:"issues,omitempty"`
	Fixes           []string `json:"fixes,omitempty"`
	Why             []string `json:"why,omitempty"`
	NextSteps       []string `json:"next_steps,omitempty"`
	TimeComplexity  string   `json:"time_complexity,omitempty"`
	SpaceComplexity string   `json:"space_complexity,omitempty"`
}

// Snapshot captures the solution as a persistable workspace.
func (s Solution) Snapshot() *Workspace {
	return &Workspace{
		Type:            ModeSolution,
		Code:            s.Code,
		Thoughts:        s.Thoughts,
		TimeComplexity:  s.TimeComplexity,
		SpaceComplexity: s.SpaceComplexity,
	}
}

// Snapshot captures the debug result as a persistable workspace.
func (d Debug) Snapshot() *Workspace {
	return &Workspace{
		Type:            ModeDebug,
		Code:            d.Code,
		Issues:          d.Issues,
		Fixes:           d.Fixes,
		Why:             d.Why,
		NextSteps:       d.NextSteps,
		TimeComplexity:  d.TimeComplexity,
		SpaceComplexity: d.SpaceComplexity,
	}
}

var (
	fenceRe  = regexp.MustCompile("(?s)```[a-zA-Z0-9#+._-]*[ \t]*\r?\n?(.*?)```")
	bulletRe = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+(.+)$`)
)

// extractCode returns the first fenced code block, trimmed, plus the input
// with that block removed so section scanning does not trip over code
// contents. Without a fence the whole trimmed input is the code and section
// scanning still sees the full text.
func extractCode(raw string) (code, rest string) {
	loc := fenceRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return strings.TrimSpace(raw), raw
	}
	code = strings.TrimSpace(raw[loc[2]:loc[3]])
	rest = raw[:loc[0]] + "\n" + raw[loc[1]:]
	return code, rest
}

// listItems splits a section body into items. Bullet-marked lines win; when
// none are present every non-empty line counts as one item.
func listItems(body string) []string {
	lines := strings.Split(body, "\n")

	var bullets []string
	for _, line := range lines {
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			bullets = append(bullets, strings.TrimSpace(m[1]))
		}
	}
	if len(bullets) > 0 {
		return bullets
	}

	var items []string
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// sectionSpan locates head in text and returns the body up to the earliest
// stop label (or end of input). ok is false when head does not match.
func sectionSpan(text string, head *regexp.Regexp, stops ...*regexp.Regexp) (body string, ok bool) {
	loc := head.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	body = text[loc[1]:]
	end := len(body)
	for _, stop := range stops {
		if s := stop.FindStringIndex(body); s != nil && s[0] < end {
			end = s[0]
		}
	}
	return body[:end], true
}

// collapse folds a multi-line span into a single space-separated statement.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
