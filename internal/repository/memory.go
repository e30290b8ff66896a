package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/slurpylabs/slurpy/internal/memory"
)

// userMemoryModel maps to the user_memories table.
type userMemoryModel struct {
	ID      string `gorm:"primaryKey"`
	UserID  string `gorm:"index"`
	Text    string
	Emotion string
	Fruit   string
	// Intensity is the classifier's confidence at write time.
	Intensity float64
	// Embedding stores the vector representation for similarity search.
	Embedding *pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time
}

func (userMemoryModel) TableName() string {
	return "user_memories"
}

// MemoryRepo accesses per-user long-term memory records.
type MemoryRepo struct {
	db *gorm.DB
}

// NewMemoryRepo returns a MemoryRepo.
func NewMemoryRepo(db *gorm.DB) *MemoryRepo {
	return &MemoryRepo{db: db}
}

// AddMemory inserts one write-once record.
func (r *MemoryRepo) AddMemory(ctx context.Context, rec memory.Record) error {
	var vector *pgvector.Vector
	if len(rec.Embedding) > 0 {
		v := pgvector.NewVector(rec.Embedding)
		vector = &v
	}
	record := userMemoryModel{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Text:      rec.Text,
		Emotion:   rec.Emotion,
		Fruit:     rec.Fruit,
		Intensity: rec.Intensity,
		Embedding: vector,
		CreatedAt: rec.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert memory: %w", err)
	}
	return nil
}

// SearchSimilar returns the texts of the user's closest memories by cosine
// similarity. The user_id filter is a hard scope; other users' records are
// unreachable from here.
func (r *MemoryRepo) SearchSimilar(ctx context.Context, userID string, embedding []float32, topK int) ([]string, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	query := `
		SELECT text
		FROM user_memories
		WHERE user_id = $2
		  AND embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $3`

	var results []string
	if err := r.db.WithContext(ctx).
		Raw(query, pgvector.NewVector(embedding), userID, topK).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}
	return results, nil
}
