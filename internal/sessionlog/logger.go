// Package sessionlog persists ended sessions: a durable JSONL log entry and
// a generated summary stored for future recall.
package sessionlog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/slurpylabs/slurpy/internal/history"
)

// Entry is one ended session, serialized as a single JSON line.
type Entry struct {
	Timestamp       time.Time      `json:"timestamp"`
	UserID          string         `json:"user_id"`
	SessionID       string         `json:"session_id"`
	DominantEmotion string         `json:"dominant_emotion"`
	Turns           []history.Turn `json:"turns"`
}

// Logger appends entries to a line-delimited JSON file.
type Logger struct {
	mu   sync.Mutex
	path string
}

// NewLogger returns a logger writing to path.
func NewLogger(path string) *Logger {
	return &Logger{path: path}
}

// Write appends one entry. The file is opened per write so the log survives
// rotation out from under a long-lived process.
func (l *Logger) Write(entry Entry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal session log entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append session log entry: %w", err)
	}
	return nil
}
