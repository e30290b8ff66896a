package memory

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	return f.EmbedQuery(ctx, text)
}

type fakeRepo struct {
	added      []Record
	addErr     error
	searchUser string
	searchK    int
	results    []string
}

func (f *fakeRepo) AddMemory(ctx context.Context, rec Record) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, rec)
	return nil
}

func (f *fakeRepo) SearchSimilar(ctx context.Context, userID string, embedding []float32, topK int) ([]string, error) {
	f.searchUser = userID
	f.searchK = topK
	return f.results, nil
}

func TestRememberStoresRecord(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(&fakeEmbedder{}, repo, slog.Default())

	svc.Remember(context.Background(), "u1", "had a rough day", "sad", "Blueberry Drizzle 🫐", 0.91)

	if len(repo.added) != 1 {
		t.Fatalf("expected 1 record, got %d", len(repo.added))
	}
	rec := repo.added[0]
	if rec.UserID != "u1" || rec.Emotion != "sad" || rec.Intensity != 0.91 {
		t.Fatalf("unexpected record: %#v", rec)
	}
	if rec.ID == "" || rec.Timestamp.IsZero() {
		t.Fatalf("record missing id or timestamp: %#v", rec)
	}
}

func TestRememberSwallowsFailures(t *testing.T) {
	svc := NewService(&fakeEmbedder{err: errors.New("embed down")}, &fakeRepo{}, slog.Default())
	// Must not panic or propagate.
	svc.Remember(context.Background(), "u1", "text", "joy", "Mango Burst 🥭", 0.5)

	svc = NewService(&fakeEmbedder{}, &fakeRepo{addErr: errors.New("db down")}, slog.Default())
	svc.Remember(context.Background(), "u1", "text", "joy", "Mango Burst 🥭", 0.5)
}

func TestRecallScopesToUser(t *testing.T) {
	repo := &fakeRepo{results: []string{"past chat"}}
	svc := NewService(&fakeEmbedder{}, repo, slog.Default())

	got, err := svc.Recall(context.Background(), "u2", "what did we talk about", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.searchUser != "u2" || repo.searchK != 3 {
		t.Fatalf("recall not scoped: user=%q k=%d", repo.searchUser, repo.searchK)
	}
	if len(got) != 1 || got[0] != "past chat" {
		t.Fatalf("unexpected recall result: %v", got)
	}
}

func TestRecallEmptyQueryIsNoop(t *testing.T) {
	repo := &fakeRepo{results: []string{"x"}}
	svc := NewService(&fakeEmbedder{}, repo, slog.Default())
	got, err := svc.Recall(context.Background(), "u1", "", 3)
	if err != nil || got != nil {
		t.Fatalf("empty query should return nothing, got %v err %v", got, err)
	}
}
