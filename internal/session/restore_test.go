package session

import (
	"reflect"
	"testing"

	"interview-cli/internal/response"
)

func TestRestore_NoWorkspace(t *testing.T) {
	s := Snippet{
		ID:       "abc",
		Question: "Reverse a linked list",
		Answer:   "func reverse(head *Node) *Node { ... }",
	}

	got := Restore(s)

	if got.Target != response.ModeSolution {
		t.Errorf("Target = %q, want solution", got.Target)
	}
	if got.Code != s.Answer {
		t.Errorf("Code = %q, want answer", got.Code)
	}
	if !reflect.DeepEqual(got.Thoughts, []string{s.Question}) {
		t.Errorf("Thoughts = %v, want [question]", got.Thoughts)
	}
	if got.TimeComplexity != RestoredComplexity {
		t.Errorf("TimeComplexity = %q, want %q", got.TimeComplexity, RestoredComplexity)
	}
	if got.SpaceComplexity != RestoredComplexity {
		t.Errorf("SpaceComplexity = %q, want %q", got.SpaceComplexity, RestoredComplexity)
	}
}

func TestRestore_DebugWorkspaceOnlyAnswer(t *testing.T) {
	s := Snippet{
		Question:  "Why does this panic?",
		Answer:    "guard the nil map before writing",
		Workspace: &response.Workspace{Type: response.ModeDebug},
	}

	got := Restore(s)

	if got.Target != response.ModeDebug {
		t.Errorf("Target = %q, want debug", got.Target)
	}
	if got.Code != s.Answer {
		t.Errorf("Code = %q, want answer", got.Code)
	}
	if got.Issues == nil || len(got.Issues) != 0 {
		t.Errorf("Issues = %v, want empty slice", got.Issues)
	}
	if got.Fixes == nil || len(got.Fixes) != 0 {
		t.Errorf("Fixes = %v, want empty slice", got.Fixes)
	}
	if got.TimeComplexity != response.DebugComplexity {
		t.Errorf("TimeComplexity = %q, want %q", got.TimeComplexity, response.DebugComplexity)
	}
	if !reflect.DeepEqual(got.Thoughts, []string{s.Question}) {
		t.Errorf("Thoughts = %v, want [question]", got.Thoughts)
	}
}

func TestRestore_DebugWorkspaceFieldsWin(t *testing.T) {
	s := Snippet{
		Question: "q",
		Answer:   "a",
		Workspace: &response.Workspace{
			Type:      response.ModeDebug,
			Code:      "fixed code",
			Issues:    []string{"issue one"},
			Fixes:     []string{"fix one"},
			NextSteps: []string{"re-run suite"},
		},
	}

	got := Restore(s)

	if got.Code != "fixed code" {
		t.Errorf("Code = %q", got.Code)
	}
	if !reflect.DeepEqual(got.Issues, []string{"issue one"}) {
		t.Errorf("Issues = %v", got.Issues)
	}
	if !reflect.DeepEqual(got.Fixes, []string{"fix one"}) {
		t.Errorf("Fixes = %v", got.Fixes)
	}
	if !reflect.DeepEqual(got.NextSteps, []string{"re-run suite"}) {
		t.Errorf("NextSteps = %v", got.NextSteps)
	}
}

func TestRestore_SolutionWorkspace(t *testing.T) {
	s := Snippet{
		Question: "Two sum",
		Answer:   "raw answer text",
		Workspace: &response.Workspace{
			Type:           response.ModeSolution,
			Code:           "def two_sum(): ...",
			Thoughts:       []string{"hash map lookup"},
			TimeComplexity: "O(n) - single pass",
		},
	}

	got := Restore(s)

	if got.Target != response.ModeSolution {
		t.Errorf("Target = %q, want solution", got.Target)
	}
	if got.Code != "def two_sum(): ..." {
		t.Errorf("Code = %q", got.Code)
	}
	if !reflect.DeepEqual(got.Thoughts, []string{"hash map lookup"}) {
		t.Errorf("Thoughts = %v", got.Thoughts)
	}
	if got.TimeComplexity != "O(n) - single pass" {
		t.Errorf("TimeComplexity = %q", got.TimeComplexity)
	}
	if got.SpaceComplexity != RestoredComplexity {
		t.Errorf("SpaceComplexity = %q, want restored sentinel", got.SpaceComplexity)
	}
}
