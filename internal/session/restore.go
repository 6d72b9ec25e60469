package session

import "interview-cli/internal/response"

// RestoredComplexity marks complexity fields of a solution rebuilt from
// history, where no live analysis happened.
const RestoredComplexity = "Loaded from session history"

// Restored is a renderable workspace rebuilt from a saved snippet. Target
// selects which fields are meaningful; the solution shape ignores
// Issues/Fixes/Why/NextSteps.
type Restored struct {
	Target          response.Mode `json:"target"`
	Code            string        `json:"code"`
	Thoughts        []string      `json:"thoughts"`
	Issues          []string      `json:"issues"`
	Fixes           []string      `json:"fixes"`
	Why             []string      `json:"why"`
	NextSteps       []string      `json:"next_steps"`
	TimeComplexity  string        `json:"time_complexity"`
	SpaceComplexity string        `json:"space_complexity"`
}

// Restore rebuilds a workspace from a snippet. It never fails: snippets
// saved before the snapshot schema existed, or with partial snapshots, get
// defaults derived from the question/answer pair. A snippet with no snapshot
// restores as a solution.
func Restore(s Snippet) Restored {
	ws := s.Workspace

	if ws != nil && ws.Type == response.ModeDebug {
		return Restored{
			Target:          response.ModeDebug,
			Code:            orString(ws.Code, s.Answer),
			Thoughts:        orList(ws.Thoughts, []string{s.Question}),
			Issues:          orList(ws.Issues, []string{}),
			Fixes:           orList(ws.Fixes, []string{}),
			Why:             orList(ws.Why, []string{}),
			NextSteps:       orList(ws.NextSteps, []string{}),
			TimeComplexity:  orString(ws.TimeComplexity, response.DebugComplexity),
			SpaceComplexity: orString(ws.SpaceComplexity, response.DebugComplexity),
		}
	}

	r := Restored{
		Target:          response.ModeSolution,
		Code:            s.Answer,
		Thoughts:        []string{s.Question},
		Issues:          []string{},
		Fixes:           []string{},
		Why:             []string{},
		NextSteps:       []string{},
		TimeComplexity:  RestoredComplexity,
		SpaceComplexity: RestoredComplexity,
	}
	if ws != nil {
		r.Code = orString(ws.Code, s.Answer)
		r.Thoughts = orList(ws.Thoughts, []string{s.Question})
		r.TimeComplexity = orString(ws.TimeComplexity, RestoredComplexity)
		r.SpaceComplexity = orString(ws.SpaceComplexity, RestoredComplexity)
	}
	return r
}

func orString(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func orList(v, fallback []string) []string {
	if len(v) > 0 {
		return v
	}
	return fallback
}
