package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// sessionSummaryModel maps to the session_summaries table, a collection
// separate from per-user memories. Summaries surface as synthetic history at
// the start of future sessions.
type sessionSummaryModel struct {
	ID              string `gorm:"primaryKey"`
	UserID          string `gorm:"index"`
	SessionID       string
	Summary         string
	DominantEmotion string
	Embedding       *pgvector.Vector `gorm:"type:vector"`
	CreatedAt       time.Time
}

func (sessionSummaryModel) TableName() string {
	return "session_summaries"
}

// SummaryRepo accesses stored session summaries.
type SummaryRepo struct {
	db *gorm.DB
}

// NewSummaryRepo returns a SummaryRepo.
func NewSummaryRepo(db *gorm.DB) *SummaryRepo {
	return &SummaryRepo{db: db}
}

// AddSummary inserts one session summary.
func (r *SummaryRepo) AddSummary(ctx context.Context, id, userID, sessionID, summary, dominantEmotion string, embedding []float32) error {
	var vector *pgvector.Vector
	if len(embedding) > 0 {
		v := pgvector.NewVector(embedding)
		vector = &v
	}
	record := sessionSummaryModel{
		ID:              id,
		UserID:          userID,
		SessionID:       sessionID,
		Summary:         summary,
		DominantEmotion: dominantEmotion,
		Embedding:       vector,
		CreatedAt:       time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert session summary: %w", err)
	}
	return nil
}

// RecentSummaries returns the user's latest summaries, oldest first.
func (r *SummaryRepo) RecentSummaries(ctx context.Context, userID string, limit int) ([]string, error) {
	var records []sessionSummaryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query session summaries: %w", err)
	}

	results := make([]string, 0, len(records))
	for _, record := range records {
		results = append(results, record.Summary)
	}

	// Oldest -> newest
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}
