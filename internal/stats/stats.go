// Package stats summarizes the session history and turns it into review
// suggestions, so practice gaps surface without reading every snippet.
package stats

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"interview-cli/internal/response"
	"interview-cli/internal/session"
)

// TagCount is a tag with its usage count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Summary aggregates the saved snippets.
type Summary struct {
	Total      int                   `json:"total"`
	ByMode     map[response.Mode]int `json:"by_mode"`
	Reviewed   int                   `json:"reviewed"`
	ReviewRate float64               `json:"review_rate"` // 0.0 - 1.0
	TopTags    []TagCount            `json:"top_tags,omitempty"`
	LastSaved  time.Time             `json:"last_saved,omitempty"`
}

// Suggestion is a practice hint derived from the summary.
type Suggestion struct {
	Type     string `json:"type"`     // "review_backlog", "mode_gap", "stale"
	Severity string `json:"severity"` // "high", "medium", "low"
	Message  string `json:"message"`
}

// Analyzer reads aggregate figures from a snippet database.
type Analyzer struct {
	db *sql.DB
}

// NewAnalyzer creates an analyzer over an open snippet database.
func NewAnalyzer(db *sql.DB) *Analyzer {
	return &Analyzer{db: db}
}

// Summarize builds a summary over the whole history. Tag counts come from
// the newest snippets only, so an old tagging habit does not dominate.
func (a *Analyzer) Summarize() (*Summary, error) {
	byMode, err := session.CountByMode(a.db)
	if err != nil {
		return nil, fmt.Errorf("count by mode: %w", err)
	}

	s := &Summary{ByMode: byMode}
	for _, n := range byMode {
		s.Total += n
	}

	if err := a.db.QueryRow(`SELECT COUNT(*) FROM snippets WHERE reviewed = 1`).Scan(&s.Reviewed); err != nil {
		return nil, fmt.Errorf("count reviewed: %w", err)
	}
	if s.Total > 0 {
		s.ReviewRate = float64(s.Reviewed) / float64(s.Total)
	}

	var lastUnix sql.NullInt64
	if err := a.db.QueryRow(`SELECT MAX(timestamp) FROM snippets`).Scan(&lastUnix); err != nil {
		return nil, fmt.Errorf("last saved: %w", err)
	}
	if lastUnix.Valid {
		s.LastSaved = time.Unix(lastUnix.Int64, 0)
	}

	recent, err := session.GetRecent(a.db, 200)
	if err != nil {
		return nil, fmt.Errorf("recent snippets: %w", err)
	}
	s.TopTags = countTags(recent, 5)

	return s, nil
}

// Suggestions derives practice hints from a summary.
func Suggestions(s *Summary) []Suggestion {
	var out []Suggestion
	if s.Total == 0 {
		return out
	}

	if backlog := s.Total - s.Reviewed; backlog >= 10 {
		severity := "medium"
		if s.ReviewRate < 0.25 {
			severity = "high"
		}
		out = append(out, Suggestion{
			Type:     "review_backlog",
			Severity: severity,
			Message:  fmt.Sprintf("%d snippets are waiting for review", backlog),
		})
	}

	solutions := s.ByMode[response.ModeSolution]
	debugs := s.ByMode[response.ModeDebug]
	if solutions+debugs >= 10 && (debugs == 0 || solutions/max(debugs, 1) >= 5) {
		out = append(out, Suggestion{
			Type:     "mode_gap",
			Severity: "low",
			Message:  "Almost no debug sessions saved; practice debugging under time pressure too",
		})
	}

	if !s.LastSaved.IsZero() && time.Since(s.LastSaved) > 7*24*time.Hour {
		out = append(out, Suggestion{
			Type:     "stale",
			Severity: "low",
			Message:  fmt.Sprintf("No new snippets since %s", s.LastSaved.Format("Jan 02")),
		})
	}

	return out
}

func countTags(snippets []session.Snippet, limit int) []TagCount {
	counts := make(map[string]int)
	for _, s := range snippets {
		for _, tag := range s.Tags {
			counts[tag]++
		}
	}

	tags := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		tags = append(tags, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}
