package render

import (
	"strings"
	"testing"
	"time"

	"interview-cli/internal/response"
	"interview-cli/internal/session"
)

func TestSolutionContainsAllSections(t *testing.T) {
	sol := response.Solution{
		Code:            "def f():\n    pass",
		Thoughts:        []string{"hash map", "single pass"},
		TimeComplexity:  "O(n) - one traversal",
		SpaceComplexity: "O(1) - constant extra",
	}

	out := Solution(sol, 80)

	for _, want := range []string{"hash map", "single pass", "def f():", "O(n) - one traversal", "O(1) - constant extra"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDebugSkipsEmptySections(t *testing.T) {
	dbg := response.Debug{
		Code:      "fixed()",
		Issues:    []string{"bad loop"},
		Fixes:     []string{},
		Why:       []string{},
		NextSteps: []string{response.DefaultNextStep},
	}

	out := Debug(dbg, 80)

	if !strings.Contains(out, "bad loop") {
		t.Error("issues section missing")
	}
	if strings.Contains(out, "Fixes") {
		t.Error("empty fixes section should be skipped")
	}
	if !strings.Contains(out, response.DefaultNextStep) {
		t.Error("next steps missing")
	}
}

func TestRestoredDispatchesOnTarget(t *testing.T) {
	deb := session.Restored{
		Target: response.ModeDebug,
		Code:   "debug code",
		Issues: []string{"an issue"},
	}
	if out := Restored(deb, 80); !strings.Contains(out, "an issue") {
		t.Error("debug restore should render issues")
	}

	sol := session.Restored{
		Target:          response.ModeSolution,
		Code:            "solution code",
		Thoughts:        []string{"a thought"},
		TimeComplexity:  session.RestoredComplexity,
		SpaceComplexity: session.RestoredComplexity,
	}
	if out := Restored(sol, 80); !strings.Contains(out, "a thought") {
		t.Error("solution restore should render thoughts")
	}
}

func TestSnippetLineTruncates(t *testing.T) {
	s := session.Snippet{
		ID:        "0123456789abcdef",
		Question:  strings.Repeat("long question ", 20),
		Mode:      response.ModeSolution,
		Timestamp: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	line := SnippetLine(s, 60)
	if !strings.Contains(line, "01234567") {
		t.Error("short id missing")
	}
	if !strings.HasSuffix(line, "...") {
		t.Errorf("expected truncation, got %q", line)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"truncated", "abcdefghij", 8, "abcde..."},
		{"tiny width", "abcdef", 2, ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWithEllipsis(tt.line, tt.width); got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}
