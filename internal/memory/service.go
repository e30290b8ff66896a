package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Record is one long-term memory entry. Write-once; never updated or
// deleted by this core.
type Record struct {
	ID        string
	UserID    string
	Text      string
	Emotion   string
	Fruit     string
	Intensity float64
	Timestamp time.Time
	Embedding []float32
}

// Repo persists and searches memory records.
type Repo interface {
	AddMemory(ctx context.Context, rec Record) error
	// SearchSimilar must hard-filter on userID; records written under other
	// users are never returned.
	SearchSimilar(ctx context.Context, userID string, embedding []float32, topK int) ([]string, error)
}

// Service is the long-term memory adapter: write on every non-crisis turn,
// read filtered by user id.
type Service struct {
	embedder Embedder
	repo     Repo
	logger   *slog.Logger
}

// NewService returns a memory service.
func NewService(embedder Embedder, repo Repo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{embedder: embedder, repo: repo, logger: logger}
}

// Remember stores one turn's text under the user. Failures are logged and
// swallowed so an already-computed reply is never lost to a memory write.
func (s *Service) Remember(ctx context.Context, userID, text, emotion, fruit string, intensity float64) {
	vec, err := s.embedder.EmbedDocument(ctx, text)
	if err != nil {
		s.logger.Warn("memory write skipped: embedding failed", "user_id", userID, "error", err)
		return
	}
	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Emotion:   emotion,
		Fruit:     fruit,
		Intensity: intensity,
		Timestamp: time.Now().UTC(),
		Embedding: vec,
	}
	if err := s.repo.AddMemory(ctx, rec); err != nil {
		s.logger.Warn("memory write failed", "user_id", userID, "error", err)
	}
}

// Recall returns up to k passages for the user ranked by similarity to the
// query. Nothing matching yields an empty slice, not an error.
func (s *Service) Recall(ctx context.Context, userID, query string, k int) ([]string, error) {
	if query == "" || k <= 0 {
		return nil, nil
	}
	vec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed recall query: %w", err)
	}
	return s.repo.SearchSimilar(ctx, userID, vec, k)
}
