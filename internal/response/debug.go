package response

import (
	"regexp"
	"strings"
)

type debugSection int

const (
	secNone debugSection = iota
	secIssues
	secFixes
	secWhy
	secVerify
)

// Section headers come back either as markdown ("### Issues") or as plain
// prose labels ("Issues Identified:"). A header line carries nothing but the
// label itself.
var debugHeaders = []struct {
	sec debugSection
	re  *regexp.Regexp
}{
	{secIssues, regexp.MustCompile(`(?i)^[ \t]*(?:#{1,6}[ \t]*)?(?:issues?(?:[ \t]+(?:identified|found))?|problems?(?:[ \t]+(?:identified|found))?)[ \t]*:?[ \t]*$`)},
	{secFixes, regexp.MustCompile(`(?i)^[ \t]*(?:#{1,6}[ \t]*)?(?:fix(?:es)?|specific improvements(?:[ \t]+and[ \t]+corrections)?|improvements?|corrections?)[ \t]*:?[ \t]*$`)},
	{secWhy, regexp.MustCompile(`(?i)^[ \t]*(?:#{1,6}[ \t]*)?(?:why(?:[ \t]+(?:these|the)[ \t]+changes(?:[ \t]+work)?)?|explanation)[ \t]*:?[ \t]*$`)},
	{secVerify, regexp.MustCompile(`(?i)^[ \t]*(?:#{1,6}[ \t]*)?(?:verif(?:y|ication)(?:[ \t]+steps)?|testing|next[ \t]+steps)[ \t]*:?[ \t]*$`)},
}

// FormatDebug parses a raw debug-mode answer into categorized sections. Like
// FormatSolution it is total; complexity fields are always the debug
// sentinel since debug answers carry no complexity analysis.
func FormatDebug(raw string) Debug {
	code, rest := extractCode(raw)

	bodies := map[debugSection][]string{}
	current := secNone
	for _, line := range strings.Split(rest, "\n") {
		if sec, ok := classifyHeader(line); ok {
			current = sec
			continue
		}
		if current != secNone {
			bodies[current] = append(bodies[current], line)
		}
	}

	dbg := Debug{
		Code:            code,
		Issues:          sectionItems(bodies[secIssues]),
		Fixes:           sectionItems(bodies[secFixes]),
		Why:             sectionItems(bodies[secWhy]),
		TimeComplexity:  DebugComplexity,
		SpaceComplexity: DebugComplexity,
	}

	dbg.NextSteps = sectionItems(bodies[secVerify])
	if len(dbg.NextSteps) == 0 {
		dbg.NextSteps = []string{DefaultNextStep}
	}

	return dbg
}

func classifyHeader(line string) (debugSection, bool) {
	for _, h := range debugHeaders {
		if h.re.MatchString(line) {
			return h.sec, true
		}
	}
	return secNone, false
}

func sectionItems(lines []string) []string {
	if len(lines) == 0 {
		return []string{}
	}
	items := listItems(strings.Join(lines, "\n"))
	if items == nil {
		return []string{}
	}
	return items
}
