// Package main is the offline loader for the static knowledge index:
// it chunks, embeds, and uploads documents into the knowledge_chunks table.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/slurpylabs/slurpy/internal/config"
	"github.com/slurpylabs/slurpy/internal/ingest"
	"github.com/slurpylabs/slurpy/internal/memory"
	"github.com/slurpylabs/slurpy/internal/repository"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: ingest <file> [file...]")
		os.Exit(2)
	}

	cfg := config.Load()
	logger := slog.Default()
	ctx := context.Background()

	store, err := repository.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	embedder, err := memory.NewGenAIEmbedder(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("failed to create embedder: %v", err)
	}

	ing := ingest.NewIngester(embedder, store.Knowledge, logger)

	total := 0
	for _, path := range os.Args[1:] {
		n, err := ing.IngestFile(ctx, path)
		if err != nil {
			log.Fatalf("failed to ingest %s: %v", path, err)
		}
		total += n
	}
	fmt.Printf("ingested %d chunks from %d files\n", total, len(os.Args)-1)
}
