package sessionlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/slurpylabs/slurpy/internal/history"
)

const summaryInstruction = "You summarize emotional support conversations. " +
	"Capture what the user was going through, how they felt, and anything they " +
	"shared about themselves worth remembering next time. Third person, a few sentences."

const summaryPromptFormat = "Summarize this conversation:\n\n%s"

// Generator produces the free-text summary.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Embedder vectorizes the summary for later retrieval.
type Embedder interface {
	EmbedDocument(ctx context.Context, text string) ([]float32, error)
}

// SummaryStore persists summaries into the collection separate from per-user
// memories.
type SummaryStore interface {
	AddSummary(ctx context.Context, id, userID, sessionID, summary, dominantEmotion string, embedding []float32) error
}

// Closer runs session teardown: the durable log write and the summary.
// Every failure is logged and swallowed; teardown always completes.
type Closer struct {
	log       *Logger
	generator Generator
	embedder  Embedder
	summaries SummaryStore
	logger    *slog.Logger
}

// NewCloser returns a Closer.
func NewCloser(log *Logger, generator Generator, embedder Embedder, summaries SummaryStore, logger *slog.Logger) *Closer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Closer{
		log:       log,
		generator: generator,
		embedder:  embedder,
		summaries: summaries,
		logger:    logger,
	}
}

// Close persists one ended session. An empty history performs no durable
// writes at all.
func (c *Closer) Close(ctx context.Context, sess *history.Session) {
	sess.Lock()
	defer sess.Unlock()

	h := sess.History()
	if h.Len() == 0 {
		return
	}

	entry := Entry{
		Timestamp:       time.Now().UTC(),
		UserID:          sess.UserID,
		SessionID:       sess.SessionID,
		DominantEmotion: h.DominantEmotion(),
		Turns:           h.Turns(),
	}
	if err := c.log.Write(entry); err != nil {
		c.logger.Warn("session log write failed", "session_id", sess.SessionID, "error", err)
	}

	if err := c.storeSummary(ctx, sess.UserID, sess.SessionID, h); err != nil {
		c.logger.Warn("session summary failed", "session_id", sess.SessionID, "error", err)
	}
}

func (c *Closer) storeSummary(ctx context.Context, userID, sessionID string, h *history.History) error {
	summary, err := c.generator.Generate(ctx, summaryInstruction, fmt.Sprintf(summaryPromptFormat, h.Format()))
	if err != nil {
		return fmt.Errorf("failed to generate summary: %w", err)
	}

	vec, err := c.embedder.EmbedDocument(ctx, summary)
	if err != nil {
		return fmt.Errorf("failed to embed summary: %w", err)
	}

	if err := c.summaries.AddSummary(ctx, uuid.NewString(), userID, sessionID, summary, h.DominantEmotion(), vec); err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}
	return nil
}
