// Package history keeps the bounded recent-turn window for each session.
package history

import (
	"fmt"
	"strings"
)

// Capacity is the maximum number of turns a history retains.
const Capacity = 6

// Turn is one user message paired with the agent's reply and the classified
// emotion. Immutable once appended.
type Turn struct {
	UserText  string `json:"user_text"`
	AgentText string `json:"agent_text"`
	Emotion   string `json:"emotion"`
}

// History is an ordered, bounded sequence of turns. Appending past capacity
// evicts the oldest turn first. Not safe for concurrent use; the Store
// serializes access per session key.
type History struct {
	turns []Turn
}

// New returns an empty history.
func New() *History {
	return &History{turns: make([]Turn, 0, Capacity)}
}

// Append adds the newest turn, evicting the oldest when the window is full.
func (h *History) Append(t Turn) {
	if len(h.turns) >= Capacity {
		copy(h.turns, h.turns[1:])
		h.turns = h.turns[:Capacity-1]
	}
	h.turns = append(h.turns, t)
}

// Len returns the number of retained turns.
func (h *History) Len() int {
	return len(h.turns)
}

// Turns returns the retained turns in chronological order.
func (h *History) Turns() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Format renders the history as alternating User/Slurpy lines. An empty
// history renders to the empty string.
func (h *History) Format() string {
	if len(h.turns) == 0 {
		return ""
	}
	var b strings.Builder
	for i, t := range h.turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "User: %s\nSlurpy: %s", t.UserText, t.AgentText)
	}
	return b.String()
}

// DominantEmotion returns the most recent turn's emotion, or "neutral" when
// the history is empty.
func (h *History) DominantEmotion() string {
	if len(h.turns) == 0 {
		return "neutral"
	}
	return h.turns[len(h.turns)-1].Emotion
}
