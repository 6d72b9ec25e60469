package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const MaxQuestionSize = 2 * 1024 // keep the request log small

// Entry - one provider request record (fields ordered by priority)
type Entry struct {
	Provider   string `json:"provider"`
	Mode       string `json:"mode"`
	Question   string `json:"question,omitempty"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Timestamp  string `json:"timestamp"`
}

// Logger - appends provider request records to requests.jsonl in the data dir
type Logger struct {
	logPath string
}

func New(dataDir string) (*Logger, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Logger{
		logPath: filepath.Join(dataDir, "requests.jsonl"),
	}, nil
}

// LogRequest - appends one record; question text is truncated, never the error
func (l *Logger) LogRequest(provider, mode, question string, durationMs int64, reqErr error) error {
	if len(question) > MaxQuestionSize {
		question = question[:MaxQuestionSize]
	}

	entry := Entry{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Provider:   provider,
		Mode:       mode,
		Question:   question,
		OK:         reqErr == nil,
		DurationMs: durationMs,
	}
	if reqErr != nil {
		entry.Error = reqErr.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	f, err := os.OpenFile(l.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	return nil
}
