package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Embedder produces document vectors for chunks.
type Embedder interface {
	EmbedDocument(ctx context.Context, text string) ([]float32, error)
}

// KnowledgeStore persists embedded chunks.
type KnowledgeStore interface {
	Add(ctx context.Context, id, text, source string, embedding []float32) error
}

// Ingester chunks documents, embeds each chunk, and writes them to the
// knowledge index.
type Ingester struct {
	embedder  Embedder
	store     KnowledgeStore
	chunkSize int
	overlap   int
	logger    *slog.Logger
}

// NewIngester returns an Ingester with the default chunking parameters.
func NewIngester(embedder Embedder, store KnowledgeStore, logger *slog.Logger) *Ingester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingester{
		embedder:  embedder,
		store:     store,
		chunkSize: defaultChunkSize,
		overlap:   defaultChunkOverlap,
		logger:    logger,
	}
}

// IngestText chunks and stores one document, returning the number of chunks
// written. The first failing chunk aborts the document; ingestion is an
// offline operation rerun after the cause is fixed.
func (i *Ingester) IngestText(ctx context.Context, source, text string) (int, error) {
	chunks := Chunk(text, i.chunkSize, i.overlap)
	for idx, chunk := range chunks {
		embedding, err := i.embedder.EmbedDocument(ctx, chunk)
		if err != nil {
			return idx, fmt.Errorf("failed to embed chunk %d of %q: %w", idx, source, err)
		}
		if err := i.store.Add(ctx, uuid.NewString(), chunk, source, embedding); err != nil {
			return idx, fmt.Errorf("failed to store chunk %d of %q: %w", idx, source, err)
		}
	}
	i.logger.Info("document ingested", "source", source, "chunks", len(chunks))
	return len(chunks), nil
}

// IngestFile reads path and ingests its contents under the file's base name.
func (i *Ingester) IngestFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return i.IngestText(ctx, filepath.Base(path), string(data))
}
