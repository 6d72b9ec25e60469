package response

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatSolution_FencedCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "python tag",
			raw:  "Here you go:\n```python\ndef f(x):\n    return x\n```\nDone.",
			want: "def f(x):\n    return x",
		},
		{
			name: "no language tag",
			raw:  "```\nlet x = 1;\n```",
			want: "let x = 1;",
		},
		{
			name: "only first fence pair used",
			raw:  "```go\nfirst()\n```\ntext\n```go\nsecond()\n```",
			want: "first()",
		},
		{
			name: "cpp tag",
			raw:  "```c++\nint main() {}\n```",
			want: "int main() {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSolution(tt.raw)
			if got.Code != tt.want {
				t.Errorf("Code = %q, want %q", got.Code, tt.want)
			}
		})
	}
}

func TestFormatSolution_NoFence(t *testing.T) {
	raw := "  def f():\n    pass  \n"
	got := FormatSolution(raw)
	if got.Code != strings.TrimSpace(raw) {
		t.Errorf("Code = %q, want entire trimmed input", got.Code)
	}
}

func TestFormatSolution_Thoughts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "dash bullets",
			raw:  "Thoughts:\n- use a hash map\n- single pass\nTime complexity: O(n)",
			want: []string{"use a hash map", "single pass"},
		},
		{
			name: "numbered list",
			raw:  "Key Insights:\n1. sort first\n2) then scan",
			want: []string{"sort first", "then scan"},
		},
		{
			name: "glyph bullets",
			raw:  "Reasoning:\n• two pointers\n• early exit",
			want: []string{"two pointers", "early exit"},
		},
		{
			name: "no bullets falls back to lines",
			raw:  "Approach:\nGreedy scan left to right.\nKeep a running max.",
			want: []string{"Greedy scan left to right.", "Keep a running max."},
		},
		{
			name: "markdown header",
			raw:  "### Thoughts:\n- memoize subproblems",
			want: []string{"memoize subproblems"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSolution(tt.raw)
			if !reflect.DeepEqual(got.Thoughts, tt.want) {
				t.Errorf("Thoughts = %v, want %v", got.Thoughts, tt.want)
			}
		})
	}
}

func TestFormatSolution_ThoughtsDefault(t *testing.T) {
	got := FormatSolution("```go\nfunc f() {}\n```\nno labeled sections here")
	want := []string{DefaultThought}
	if !reflect.DeepEqual(got.Thoughts, want) {
		t.Errorf("Thoughts = %v, want %v", got.Thoughts, want)
	}
}

func TestFormatSolution_ThoughtsStopAtTimeComplexity(t *testing.T) {
	raw := "Thoughts:\n- one\nTime complexity: O(n) because single pass\nSpace complexity: O(1) because constant extra"
	got := FormatSolution(raw)
	if !reflect.DeepEqual(got.Thoughts, []string{"one"}) {
		t.Errorf("Thoughts = %v, want [one]", got.Thoughts)
	}
	if got.TimeComplexity != "O(n) because single pass" {
		t.Errorf("TimeComplexity = %q", got.TimeComplexity)
	}
	if got.SpaceComplexity != "O(1) because constant extra" {
		t.Errorf("SpaceComplexity = %q", got.SpaceComplexity)
	}
}

func TestFormatSolution_ComplexityDefaults(t *testing.T) {
	got := FormatSolution("just some prose")
	if got.TimeComplexity != defaultTimeComplexity {
		t.Errorf("TimeComplexity = %q", got.TimeComplexity)
	}
	if got.SpaceComplexity != defaultSpaceComplexity {
		t.Errorf("SpaceComplexity = %q", got.SpaceComplexity)
	}
}

func TestFormatSolution_EndToEnd(t *testing.T) {
	raw := "```python\ndef f():\n pass\n```\nTime complexity: O(n)\nSpace complexity: O(1)"
	got := FormatSolution(raw)

	if got.Code != "def f():\n pass" {
		t.Errorf("Code = %q", got.Code)
	}
	if !strings.Contains(got.TimeComplexity, "O(n)") {
		t.Errorf("TimeComplexity = %q, want O(n) present", got.TimeComplexity)
	}
	if !strings.Contains(got.SpaceComplexity, "O(1)") {
		t.Errorf("SpaceComplexity = %q, want O(1) present", got.SpaceComplexity)
	}
}

func TestNormalizeComplexity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no notation gets prefix", "5 elements, linear scan", "O(n) - 5 elements, linear scan"},
		{"notation without separator", "O(n) single pass", "O(n) - single pass"},
		{"already separated", "O(1) - already explained", "O(1) - already explained"},
		{"because counts as separator", "O(log n) because binary search", "O(log n) because binary search"},
		{"bare notation unchanged", "O(n)", "O(n)"},
		{"notation mid-sentence", "roughly O(n) overall", "roughly O(n) - overall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeComplexity(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeComplexity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
