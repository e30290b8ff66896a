package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// knowledgeChunkModel maps to the knowledge_chunks table, the static index
// populated offline by the ingest command.
type knowledgeChunkModel struct {
	ID        string `gorm:"primaryKey"`
	Text      string
	Source    string
	Embedding *pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time
}

func (knowledgeChunkModel) TableName() string {
	return "knowledge_chunks"
}

// KnowledgeRepo accesses the static knowledge index.
type KnowledgeRepo struct {
	db *gorm.DB
}

// NewKnowledgeRepo returns a KnowledgeRepo.
func NewKnowledgeRepo(db *gorm.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

// Add inserts one chunk into the index.
func (r *KnowledgeRepo) Add(ctx context.Context, id, text, source string, embedding []float32) error {
	var vector *pgvector.Vector
	if len(embedding) > 0 {
		v := pgvector.NewVector(embedding)
		vector = &v
	}
	record := knowledgeChunkModel{
		ID:        id,
		Text:      text,
		Source:    source,
		Embedding: vector,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert knowledge chunk: %w", err)
	}
	return nil
}

// Search returns the topK chunk texts ranked by cosine distance to the
// query embedding.
func (r *KnowledgeRepo) Search(ctx context.Context, embedding []float32, topK int) ([]string, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	query := `
		SELECT text
		FROM knowledge_chunks
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2`

	var results []string
	if err := r.db.WithContext(ctx).
		Raw(query, pgvector.NewVector(embedding), topK).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search knowledge chunks: %w", err)
	}
	return results, nil
}
