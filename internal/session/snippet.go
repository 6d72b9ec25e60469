// Package session owns the saved question/answer history: the sqlite-backed
// snippet store and the workspace restorer that rebuilds a renderable payload
// from a stored record.
package session

import (
	"time"

	"interview-cli/internal/response"
)

// Snippet is one saved question/answer pair. Workspace is nil for records
// written before workspace snapshots existed.
type Snippet struct {
	ID        string              `json:"id"`
	Question  string              `json:"question"`
	Answer    string              `json:"answer"`
	Mode      response.Mode       `json:"mode"`
	Timestamp time.Time           `json:"timestamp"`
	Tags      []string            `json:"tags,omitempty"`
	Reviewed  bool                `json:"reviewed,omitempty"`
	Workspace *response.Workspace `json:"workspace,omitempty"`
}
