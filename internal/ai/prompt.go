package ai

import "fmt"

// SolutionPrompt asks for the labeled-section convention the response
// formatter expects. Providers drift from it constantly, which is why the
// formatter tolerates almost anything.
func SolutionPrompt(question string) string {
	return fmt.Sprintf(`You are a senior engineer answering a coding interview question.

Structure your answer EXACTLY like this:

Thoughts:
- 2-4 short bullet points explaining the key insight and approach

%s
<your solution code here>
%s

Time complexity: O(...) - one sentence explanation
Space complexity: O(...) - one sentence explanation

QUESTION:
%s`, "```", "```", question)
}

// DebugPrompt asks for the sectioned debug convention (### Issues etc.).
func DebugPrompt(code, errOutput string) string {
	return fmt.Sprintf(`You are a senior engineer reviewing broken code.

Structure your answer EXACTLY like this:

### Issues
- each problem you found, one bullet per problem

### Fixes
- each concrete correction, one bullet per fix

### Why
- why the fixes address the problems

### Verify
- how to confirm the fixes work

Then the corrected code in a fenced code block.

CODE:
%s
%s
%s

ERROR OUTPUT:
%s`, "```", code, "```", errOutput)
}
