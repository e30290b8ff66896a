package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/slurpylabs/slurpy/internal/history"
)

func TestAssembleJoinsKnowledgeWithSeparator(t *testing.T) {
	a := NewAssembler(&fakeKnowledge{passages: []string{"one", "two"}}, &fakeRecaller{}, nil, slog.Default())

	ctx, hist := a.Assemble(context.Background(), "u1", "query", history.New())
	if ctx != "one\n---\ntwo" {
		t.Fatalf("unexpected context: %q", ctx)
	}
	if hist != "" {
		t.Fatalf("empty history should format to empty string, got %q", hist)
	}
}

func TestAssemblePrependsMemoryBlock(t *testing.T) {
	a := NewAssembler(
		&fakeKnowledge{passages: []string{"knowledge"}},
		&fakeRecaller{passages: []string{"we talked about exams"}},
		nil,
		slog.Default(),
	)

	ctx, _ := a.Assemble(context.Background(), "u1", "query", history.New())
	memIdx := strings.Index(ctx, "we talked about exams")
	knowIdx := strings.Index(ctx, "knowledge")
	if memIdx == -1 || knowIdx == -1 {
		t.Fatalf("context missing a source: %q", ctx)
	}
	if memIdx > knowIdx {
		t.Fatalf("memory block must precede knowledge context: %q", ctx)
	}
	if !strings.Contains(ctx, "Past conversations with this user:") {
		t.Fatalf("memory block missing its delimiter: %q", ctx)
	}
}

func TestAssembleScopesRecallToUser(t *testing.T) {
	recaller := &fakeRecaller{}
	a := NewAssembler(&fakeKnowledge{}, recaller, nil, slog.Default())

	a.Assemble(context.Background(), "user-42", "query", history.New())
	if recaller.userID != "user-42" {
		t.Fatalf("recall used wrong user id %q", recaller.userID)
	}
}

func TestAssemblePreloadsSummariesOnFreshSession(t *testing.T) {
	summaries := &fakeSummaries{summaries: []string{"talked through exam stress", "celebrated the passing grade"}}
	a := NewAssembler(&fakeKnowledge{}, &fakeRecaller{}, summaries, slog.Default())

	_, hist := a.Assemble(context.Background(), "user-42", "hello again", history.New())
	want := "Earlier session: talked through exam stress\nEarlier session: celebrated the passing grade"
	if hist != want {
		t.Fatalf("fresh session should start from summaries:\ngot  %q\nwant %q", hist, want)
	}
	if summaries.userID != "user-42" {
		t.Fatalf("summary preload used wrong user id %q", summaries.userID)
	}
	if summaries.limit != summaryLimit {
		t.Fatalf("expected limit %d, got %d", summaryLimit, summaries.limit)
	}
}

func TestAssembleSkipsSummariesOnceHistoryExists(t *testing.T) {
	summaries := &fakeSummaries{summaries: []string{"should not appear"}}
	a := NewAssembler(&fakeKnowledge{}, &fakeRecaller{}, summaries, slog.Default())

	h := history.New()
	h.Append(history.Turn{UserText: "hi", AgentText: "hello", Emotion: "joy"})

	_, hist := a.Assemble(context.Background(), "u1", "query", h)
	if summaries.calls != 0 {
		t.Fatalf("summary store queried on a session with live history")
	}
	if strings.Contains(hist, "should not appear") {
		t.Fatalf("live history must not be mixed with summaries: %q", hist)
	}
}

func TestAssembleDegradesOnSummaryFailure(t *testing.T) {
	summaries := &fakeSummaries{err: errors.New("summaries down")}
	a := NewAssembler(&fakeKnowledge{}, &fakeRecaller{}, summaries, slog.Default())

	_, hist := a.Assemble(context.Background(), "u1", "hello again", history.New())
	if hist != "" {
		t.Fatalf("summary failure should degrade to empty history, got %q", hist)
	}
}

func TestAssembleDegradesOnRetrievalFailure(t *testing.T) {
	a := NewAssembler(
		&fakeKnowledge{err: errors.New("index down")},
		&fakeRecaller{err: errors.New("memory down")},
		nil,
		slog.Default(),
	)

	h := history.New()
	h.Append(history.Turn{UserText: "hi", AgentText: "hello", Emotion: "joy"})

	ctx, hist := a.Assemble(context.Background(), "u1", "query", h)
	if ctx != "" {
		t.Fatalf("both sources failed, context should be empty: %q", ctx)
	}
	if hist == "" {
		t.Fatalf("history formatting is local and must survive retrieval failures")
	}
}
