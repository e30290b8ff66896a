package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/slurpylabs/slurpy/internal/history"
)

// KnowledgeRetriever searches the static knowledge index.
type KnowledgeRetriever interface {
	Retrieve(ctx context.Context, query string) ([]string, error)
}

// MemoryRecaller searches the user's long-term memory.
type MemoryRecaller interface {
	Recall(ctx context.Context, userID, query string, k int) ([]string, error)
}

// SummaryRecaller returns the user's latest session summaries, oldest first.
type SummaryRecaller interface {
	RecentSummaries(ctx context.Context, userID string, limit int) ([]string, error)
}

const (
	knowledgeSeparator = "\n---\n"
	memoryTopK         = 3
	summaryLimit       = 3
)

// Assembler merges static knowledge, per-user memory recall, and formatted
// turn history into the grounding inputs for the prompt. On the first turn of
// a session, when there is no turn history yet, the user's recent session
// summaries stand in as synthetic history.
type Assembler struct {
	knowledge KnowledgeRetriever
	memories  MemoryRecaller
	summaries SummaryRecaller
	logger    *slog.Logger
}

// NewAssembler returns an Assembler. summaries may be nil on surfaces without
// a summary store.
func NewAssembler(knowledge KnowledgeRetriever, memories MemoryRecaller, summaries SummaryRecaller, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{knowledge: knowledge, memories: memories, summaries: summaries, logger: logger}
}

// Assemble returns the context blob and the formatted history. Retrieval is
// a quality enhancement: either source failing degrades to empty rather than
// failing the turn.
func (a *Assembler) Assemble(ctx context.Context, userID, text string, h *history.History) (contextBlob, historyBlob string) {
	passages, err := a.knowledge.Retrieve(ctx, text)
	if err != nil {
		a.logger.Warn("knowledge retrieval failed, continuing without it", "error", err)
		passages = nil
	}
	contextBlob = strings.Join(passages, knowledgeSeparator)

	recalled, err := a.memories.Recall(ctx, userID, text, memoryTopK)
	if err != nil {
		a.logger.Warn("memory recall failed, continuing without it", "user_id", userID, "error", err)
		recalled = nil
	}
	if len(recalled) > 0 {
		var b strings.Builder
		b.WriteString("Past conversations with this user:\n")
		for _, passage := range recalled {
			b.WriteString("- ")
			b.WriteString(passage)
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		contextBlob = b.String() + contextBlob
	}

	historyBlob = h.Format()
	if historyBlob == "" && a.summaries != nil {
		summaries, err := a.summaries.RecentSummaries(ctx, userID, summaryLimit)
		if err != nil {
			a.logger.Warn("summary preload failed, starting with empty history", "user_id", userID, "error", err)
			summaries = nil
		}
		if len(summaries) > 0 {
			lines := make([]string, 0, len(summaries))
			for _, s := range summaries {
				lines = append(lines, "Earlier session: "+s)
			}
			historyBlob = strings.Join(lines, "\n")
		}
	}

	return contextBlob, historyBlob
}
