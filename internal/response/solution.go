package response

import (
	"regexp"
	"strings"
)

var (
	thoughtsRe = regexp.MustCompile(`(?im)^[ \t]*(?:#{1,6}[ \t]*)?(?:thoughts|key insights|reasoning|approach)[ \t]*:`)
	timeRe     = regexp.MustCompile(`(?i)time complexity[ \t]*:`)
	spaceRe    = regexp.MustCompile(`(?i)space complexity[ \t]*:`)

	bigORe = regexp.MustCompile(`O\([^)]*\)`)
)

// FormatSolution parses a raw solution-mode answer. It never fails: missing
// sections fall back to the documented defaults.
func FormatSolution(raw string) Solution {
	code, rest := extractCode(raw)

	sol := Solution{
		Code:            code,
		Thoughts:        []string{DefaultThought},
		TimeComplexity:  defaultTimeComplexity,
		SpaceComplexity: defaultSpaceComplexity,
	}

	if body, ok := sectionSpan(rest, thoughtsRe, timeRe); ok {
		if items := listItems(body); len(items) > 0 {
			sol.Thoughts = items
		}
	}
	if span, ok := sectionSpan(rest, timeRe, spaceRe, thoughtsRe); ok {
		if s := collapse(span); s != "" {
			sol.TimeComplexity = NormalizeComplexity(s)
		}
	}
	if span, ok := sectionSpan(rest, spaceRe, timeRe, thoughtsRe); ok {
		if s := collapse(span); s != "" {
			sol.SpaceComplexity = NormalizeComplexity(s)
		}
	}

	return sol
}

// NormalizeComplexity coerces a complexity statement into the
// "O(...) - explanation" shape. A statement with no big-O notation gets a
// generic O(n) prefix; one with notation but no separator gets a "-"
// inserted after the notation; anything already separated passes through.
func NormalizeComplexity(s string) string {
	s = strings.TrimSpace(s)

	loc := bigORe.FindStringIndex(s)
	if loc == nil {
		return "O(n) - " + s
	}

	if strings.Contains(s, "-") || strings.Contains(strings.ToLower(s), "because") {
		return s
	}

	explanation := strings.TrimSpace(s[loc[1]:])
	if explanation == "" {
		return s
	}
	return s[:loc[1]] + " - " + explanation
}
