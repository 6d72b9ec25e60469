package response

import (
	"reflect"
	"testing"
)

func TestFormatDebug_MarkdownSections(t *testing.T) {
	raw := `### Issues
- off-by-one in loop bound
- missing nil check

### Fixes
- iterate to len(items)-1
- guard against nil input

### Why
- the last element was read twice

### Verify
- run the unit tests
- check the empty-slice case

` + "```go\nfor i := 0; i < len(items)-1; i++ {}\n```"

	got := FormatDebug(raw)

	if got.Code != "for i := 0; i < len(items)-1; i++ {}" {
		t.Errorf("Code = %q", got.Code)
	}
	if want := []string{"off-by-one in loop bound", "missing nil check"}; !reflect.DeepEqual(got.Issues, want) {
		t.Errorf("Issues = %v, want %v", got.Issues, want)
	}
	if want := []string{"iterate to len(items)-1", "guard against nil input"}; !reflect.DeepEqual(got.Fixes, want) {
		t.Errorf("Fixes = %v, want %v", got.Fixes, want)
	}
	if want := []string{"the last element was read twice"}; !reflect.DeepEqual(got.Why, want) {
		t.Errorf("Why = %v, want %v", got.Why, want)
	}
	if want := []string{"run the unit tests", "check the empty-slice case"}; !reflect.DeepEqual(got.NextSteps, want) {
		t.Errorf("NextSteps = %v, want %v", got.NextSteps, want)
	}
}

func TestFormatDebug_PlainTextSynonyms(t *testing.T) {
	raw := `Issues Identified:
- race on shared counter

Specific Improvements and Corrections:
- protect the counter with a mutex

Explanation:
- concurrent writers interleave without locking

Verification:
- run with -race enabled`

	got := FormatDebug(raw)

	if want := []string{"race on shared counter"}; !reflect.DeepEqual(got.Issues, want) {
		t.Errorf("Issues = %v, want %v", got.Issues, want)
	}
	if want := []string{"protect the counter with a mutex"}; !reflect.DeepEqual(got.Fixes, want) {
		t.Errorf("Fixes = %v, want %v", got.Fixes, want)
	}
	if want := []string{"concurrent writers interleave without locking"}; !reflect.DeepEqual(got.Why, want) {
		t.Errorf("Why = %v, want %v", got.Why, want)
	}
	if want := []string{"run with -race enabled"}; !reflect.DeepEqual(got.NextSteps, want) {
		t.Errorf("NextSteps = %v, want %v", got.NextSteps, want)
	}
}

func TestFormatDebug_NextStepsDefault(t *testing.T) {
	raw := "### Issues\n- something is wrong\n"
	got := FormatDebug(raw)

	want := []string{DefaultNextStep}
	if !reflect.DeepEqual(got.NextSteps, want) {
		t.Errorf("NextSteps = %v, want %v", got.NextSteps, want)
	}
}

func TestFormatDebug_ComplexitySentinels(t *testing.T) {
	got := FormatDebug("anything at all")
	if got.TimeComplexity != DebugComplexity || got.SpaceComplexity != DebugComplexity {
		t.Errorf("complexity = %q/%q, want %q", got.TimeComplexity, got.SpaceComplexity, DebugComplexity)
	}
}

func TestFormatDebug_EmptySectionsAreEmptySlices(t *testing.T) {
	got := FormatDebug("no recognizable structure")
	if got.Issues == nil || len(got.Issues) != 0 {
		t.Errorf("Issues = %v, want empty slice", got.Issues)
	}
	if got.Fixes == nil || len(got.Fixes) != 0 {
		t.Errorf("Fixes = %v, want empty slice", got.Fixes)
	}
	if got.Why == nil || len(got.Why) != 0 {
		t.Errorf("Why = %v, want empty slice", got.Why)
	}
}

func TestFormatDebug_UnbulletedBodyFallsBackToLines(t *testing.T) {
	raw := "### Fix\nWrap the call in a retry loop.\nCap retries at three."
	got := FormatDebug(raw)

	want := []string{"Wrap the call in a retry loop.", "Cap retries at three."}
	if !reflect.DeepEqual(got.Fixes, want) {
		t.Errorf("Fixes = %v, want %v", got.Fixes, want)
	}
}
