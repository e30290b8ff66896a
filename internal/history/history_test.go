package history

import (
	"fmt"
	"testing"
	"time"
)

func TestAppendStaysWithinCapacity(t *testing.T) {
	h := New()
	for i := 0; i < 10; i++ {
		h.Append(Turn{UserText: fmt.Sprintf("u%d", i), AgentText: fmt.Sprintf("a%d", i), Emotion: "neutral"})
		if h.Len() > Capacity {
			t.Fatalf("history grew to %d after %d appends", h.Len(), i+1)
		}
	}
	if h.Len() != Capacity {
		t.Fatalf("expected full window of %d, got %d", Capacity, h.Len())
	}
}

func TestAppendEvictsOldestFirst(t *testing.T) {
	h := New()
	for i := 0; i < Capacity+2; i++ {
		h.Append(Turn{UserText: fmt.Sprintf("u%d", i)})
	}
	turns := h.Turns()
	for i, turn := range turns {
		want := fmt.Sprintf("u%d", i+2)
		if turn.UserText != want {
			t.Fatalf("turn %d = %q, want %q (FIFO eviction broken)", i, turn.UserText, want)
		}
	}
}

func TestFormat(t *testing.T) {
	h := New()
	if h.Format() != "" {
		t.Fatalf("empty history should format to empty string")
	}
	h.Append(Turn{UserText: "hello", AgentText: "hey there", Emotion: "joy"})
	h.Append(Turn{UserText: "rough day", AgentText: "tell me more", Emotion: "sad"})
	want := "User: hello\nSlurpy: hey there\nUser: rough day\nSlurpy: tell me more"
	if got := h.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestDominantEmotion(t *testing.T) {
	h := New()
	if h.DominantEmotion() != "neutral" {
		t.Fatalf("empty history should be neutral")
	}
	h.Append(Turn{Emotion: "joy"})
	h.Append(Turn{Emotion: "sad"})
	if h.DominantEmotion() != "sad" {
		t.Fatalf("dominant emotion should be the most recent turn's")
	}
}

func TestStoreAcquireReturnsSameSession(t *testing.T) {
	s := NewStore(time.Minute)
	a := s.Acquire("u1", "s1")
	b := s.Acquire("u1", "s1")
	if a != b {
		t.Fatalf("same key should return the same session")
	}
	if s.Acquire("u2", "s1") == a {
		t.Fatalf("distinct users must not share a session")
	}
}

func TestStoreEndRunsTeardownOnce(t *testing.T) {
	s := NewStore(time.Minute)
	calls := 0
	s.SetTeardown(func(sess *Session) {
		calls++
		if sess.UserID != "u1" || sess.SessionID != "s1" {
			t.Errorf("teardown got wrong key %s/%s", sess.UserID, sess.SessionID)
		}
	})

	sess := s.Acquire("u1", "s1")
	sess.Lock()
	sess.History().Append(Turn{UserText: "hi", AgentText: "hello", Emotion: "joy"})
	sess.Unlock()

	s.End("u1", "s1")
	s.End("u1", "s1")
	if calls != 1 {
		t.Fatalf("teardown ran %d times, want 1", calls)
	}
	if s.Len() != 0 {
		t.Fatalf("session should be gone after End")
	}
}
