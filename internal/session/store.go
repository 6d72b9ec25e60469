package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"interview-cli/internal/response"

	_ "modernc.org/sqlite"
)

// InitDB opens the snippet database in the configured data directory,
// creating both as needed. INTERVIEW_DATA_DIR overrides ~/.interview.
func InitDB() (*sql.DB, error) {
	var dbPath string
	if envDir := os.Getenv("INTERVIEW_DATA_DIR"); envDir != "" {
		if err := os.MkdirAll(envDir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dbPath = filepath.Join(envDir, "sessions.db")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get user home dir: %w", err)
		}
		dir := filepath.Join(home, ".interview")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dbPath = filepath.Join(dir, "sessions.db")
	}
	return OpenDB(dbPath)
}

// OpenDB opens and migrates a snippet database at an explicit path.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS snippets (
		id        TEXT PRIMARY KEY,
		question  TEXT NOT NULL,
		answer    TEXT NOT NULL,
		mode      TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		tags      TEXT,
		reviewed  INTEGER DEFAULT 0,
		workspace TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_snippets_timestamp ON snippets(timestamp);
	CREATE INDEX IF NOT EXISTS idx_snippets_mode ON snippets(mode);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return err
	}

	// Older databases predate the reviewed flag.
	_, _ = db.Exec("ALTER TABLE snippets ADD COLUMN reviewed INTEGER DEFAULT 0")

	return nil
}

// SaveSnippet inserts a snippet, serializing tags and the optional workspace
// snapshot as JSON.
func SaveSnippet(db *sql.DB, s Snippet) error {
	tagsJSON, err := json.Marshal(s.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	var workspaceJSON sql.NullString
	if s.Workspace != nil {
		data, err := json.Marshal(s.Workspace)
		if err != nil {
			return fmt.Errorf("marshal workspace: %w", err)
		}
		workspaceJSON = sql.NullString{String: string(data), Valid: true}
	}

	query := `INSERT INTO snippets (id, question, answer, mode, timestamp, tags, reviewed, workspace)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = db.Exec(query, s.ID, s.Question, s.Answer, string(s.Mode), s.Timestamp.Unix(), string(tagsJSON), boolToInt(s.Reviewed), workspaceJSON)
	return err
}

// GetRecent returns the newest snippets, most recent first.
func GetRecent(db *sql.DB, limit int) ([]Snippet, error) {
	query := `SELECT id, question, answer, mode, timestamp, COALESCE(tags, '[]'), reviewed, workspace
			  FROM snippets ORDER BY timestamp DESC, id DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSnippets(rows)
}

// SearchSnippets matches the query against question, answer and tags.
func SearchSnippets(db *sql.DB, query string) ([]Snippet, error) {
	sqlQuery := `SELECT id, question, answer, mode, timestamp, COALESCE(tags, '[]'), reviewed, workspace
				 FROM snippets
				 WHERE question LIKE ? OR answer LIKE ? OR tags LIKE ?
				 ORDER BY timestamp DESC, id DESC
				 LIMIT 50`

	wildcard := "%" + query + "%"
	rows, err := db.Query(sqlQuery, wildcard, wildcard, wildcard)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSnippets(rows)
}

// GetByID returns a single snippet, or nil when the id is unknown. An id
// prefix is accepted so truncated ids from list output resolve too.
func GetByID(db *sql.DB, id string) (*Snippet, error) {
	query := `SELECT id, question, answer, mode, timestamp, COALESCE(tags, '[]'), reviewed, workspace
			  FROM snippets WHERE id = ? OR id LIKE ? ORDER BY timestamp DESC LIMIT 1`

	rows, err := db.Query(query, id, id+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanSnippets(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// DeleteSnippet removes a snippet by exact id.
func DeleteSnippet(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM snippets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("snippet not found: %s", id)
	}
	return nil
}

// MarkReviewed flags a snippet as reviewed.
func MarkReviewed(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE snippets SET reviewed = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("snippet not found: %s", id)
	}
	return nil
}

// CountByMode reports how many snippets exist per answer mode.
func CountByMode(db *sql.DB) (map[response.Mode]int, error) {
	rows, err := db.Query(`SELECT mode, COUNT(*) FROM snippets GROUP BY mode`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[response.Mode]int)
	for rows.Next() {
		var mode string
		var n int
		if err := rows.Scan(&mode, &n); err != nil {
			return nil, err
		}
		counts[response.Mode(mode)] = n
	}
	return counts, rows.Err()
}

func scanSnippets(rows *sql.Rows) ([]Snippet, error) {
	var items []Snippet
	for rows.Next() {
		var s Snippet
		var mode, tagsJSON string
		var ts int64
		var reviewed int
		var workspaceJSON sql.NullString

		if err := rows.Scan(&s.ID, &s.Question, &s.Answer, &mode, &ts, &tagsJSON, &reviewed, &workspaceJSON); err != nil {
			return nil, err
		}

		s.Mode = response.Mode(mode)
		s.Timestamp = time.Unix(ts, 0)
		s.Reviewed = reviewed != 0

		if err := json.Unmarshal([]byte(tagsJSON), &s.Tags); err != nil {
			s.Tags = nil
		}

		if workspaceJSON.Valid && strings.TrimSpace(workspaceJSON.String) != "" {
			var ws response.Workspace
			if err := json.Unmarshal([]byte(workspaceJSON.String), &ws); err == nil {
				s.Workspace = &ws
			}
		}

		items = append(items, s)
	}
	return items, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
