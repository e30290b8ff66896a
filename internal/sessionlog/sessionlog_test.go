package sessionlog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slurpylabs/slurpy/internal/history"
)

type fakeGenerator struct {
	summary string
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

type fakeEmbedder struct{}

func (fakeEmbedder) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

type fakeSummaryStore struct {
	added int
	err   error
	user  string
}

func (f *fakeSummaryStore) AddSummary(ctx context.Context, id, userID, sessionID, summary, dominantEmotion string, embedding []float32) error {
	if f.err != nil {
		return f.err
	}
	f.added++
	f.user = userID
	return nil
}

func newSession(t *testing.T, turns ...history.Turn) *history.Session {
	t.Helper()
	store := history.NewStore(time.Minute)
	sess := store.Acquire("u1", "s1")
	sess.Lock()
	for _, turn := range turns {
		sess.History().Append(turn)
	}
	sess.Unlock()
	return sess
}

func TestLoggerAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.jsonl")
	l := NewLogger(path)

	for i := 0; i < 2; i++ {
		err := l.Write(Entry{
			Timestamp:       time.Now().UTC(),
			UserID:          "u1",
			SessionID:       "s1",
			DominantEmotion: "sad",
			Turns:           []history.Turn{{UserText: "hi", AgentText: "hello", Emotion: "sad"}},
		})
		if err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
		if entry.DominantEmotion != "sad" || len(entry.Turns) != 1 {
			t.Fatalf("unexpected entry: %#v", entry)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 log lines, got %d", lines)
	}
}

func TestCloseEmptySessionWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.jsonl")
	gen := &fakeGenerator{summary: "a summary"}
	store := &fakeSummaryStore{}
	c := NewCloser(NewLogger(path), gen, fakeEmbedder{}, store, slog.Default())

	c.Close(context.Background(), newSession(t))

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("empty session must not create the log file")
	}
	if gen.calls != 0 || store.added != 0 {
		t.Fatalf("empty session must not summarize: gen=%d store=%d", gen.calls, store.added)
	}
}

func TestCloseWritesLogAndSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.jsonl")
	gen := &fakeGenerator{summary: "user talked about exams"}
	store := &fakeSummaryStore{}
	c := NewCloser(NewLogger(path), gen, fakeEmbedder{}, store, slog.Default())

	c.Close(context.Background(), newSession(t, history.Turn{UserText: "exams", AgentText: "hang in there", Emotion: "anxious"}))

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if store.added != 1 || store.user != "u1" {
		t.Fatalf("expected one stored summary for u1, got %d/%q", store.added, store.user)
	}
}

func TestCloseSurvivesSummaryFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.jsonl")
	gen := &fakeGenerator{err: errors.New("model down")}
	store := &fakeSummaryStore{}
	c := NewCloser(NewLogger(path), gen, fakeEmbedder{}, store, slog.Default())

	// Must not panic or abort; the log entry still lands.
	c.Close(context.Background(), newSession(t, history.Turn{UserText: "hi", AgentText: "hello", Emotion: "joy"}))

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log write should survive summary failure: %v", err)
	}
	if store.added != 0 {
		t.Fatalf("no summary should be stored on generation failure")
	}
}
