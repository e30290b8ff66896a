package memory

import (
	"context"
	"fmt"
)

// KnowledgeRepo searches the static knowledge index.
type KnowledgeRepo interface {
	Search(ctx context.Context, embedding []float32, topK int) ([]string, error)
}

// KnowledgeRetriever provides semantic search over the read-only knowledge
// chunks ingested at startup.
type KnowledgeRetriever struct {
	embedder Embedder
	repo     KnowledgeRepo
	topK     int
}

// NewKnowledgeRetriever creates a retriever. topK defaults to 4.
func NewKnowledgeRetriever(embedder Embedder, repo KnowledgeRepo, topK int) *KnowledgeRetriever {
	if topK <= 0 {
		topK = 4
	}
	return &KnowledgeRetriever{embedder: embedder, repo: repo, topK: topK}
}

// Retrieve returns the top passages for a query, ranked by the store's own
// relevance ordering.
func (r *KnowledgeRetriever) Retrieve(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}
	vec, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed knowledge query: %w", err)
	}
	return r.repo.Search(ctx, vec, r.topK)
}
