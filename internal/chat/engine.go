package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slurpylabs/slurpy/internal/emotion"
	"github.com/slurpylabs/slurpy/internal/history"
	"github.com/slurpylabs/slurpy/internal/mode"
)

// Generator produces a reply for a system instruction and prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// MemoryWriter records a turn into long-term memory. Implementations must
// not fail the turn; write errors stay inside the writer.
type MemoryWriter interface {
	Remember(ctx context.Context, userID, text, emotion, fruit string, intensity float64)
}

// Request is one inbound message.
type Request struct {
	UserID    string
	SessionID string
	Mode      string
	Text      string
}

// Reply is the engine's answer for one turn.
type Reply struct {
	SessionID string
	Text      string
	Emotion   string
	Fruit     string
	State     State
}

// FarewellConfirmation is returned on the farewell path; the interactive
// surface asks it before ending the session.
const FarewellConfirmation = "It sounds like you're wrapping up. Ready to end our session here?"

// Engine runs the per-turn pipeline: state dispatch, emotion classification,
// context assembly, prompt construction, generation, history update, and the
// long-term memory write.
type Engine struct {
	modes      *mode.Registry
	classifier emotion.Classifier
	assembler  *Assembler
	generator  Generator
	sessions   *history.Store
	memories   MemoryWriter
	opts       DetectOptions
	logger     *slog.Logger
}

// NewEngine wires the orchestration core. opts selects which auxiliary
// short-circuits this surface honors.
func NewEngine(modes *mode.Registry, classifier emotion.Classifier, assembler *Assembler, generator Generator, sessions *history.Store, memories MemoryWriter, opts DetectOptions, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		modes:      modes,
		classifier: classifier,
		assembler:  assembler,
		generator:  generator,
		sessions:   sessions,
		memories:   memories,
		opts:       opts,
		logger:     logger,
	}
}

// HandleMessage processes one turn to completion. Turns for the same
// (user, session) key are serialized; independent keys run in parallel.
func (e *Engine) HandleMessage(ctx context.Context, req Request) (Reply, error) {
	if req.UserID == "" {
		return Reply{}, fmt.Errorf("user id is required")
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	m := e.modes.Lookup(req.Mode)

	sess := e.sessions.Acquire(req.UserID, sessionID)
	sess.Lock()
	defer sess.Unlock()

	switch Detect(req.Text, e.opts) {
	case StateCrisis:
		return e.handleCrisis(sess, m, req.Text, sessionID), nil
	case StateGreeting:
		return e.handleGreeting(ctx, sess, m, req.Text, sessionID)
	case StateFarewell:
		return Reply{
			SessionID: sessionID,
			Text:      FarewellConfirmation,
			Emotion:   sess.History().DominantEmotion(),
			Fruit:     emotion.Fruit(sess.History().DominantEmotion()),
			State:     StateFarewell,
		}, nil
	}
	return e.handleNormal(ctx, sess, m, req.Text, sessionID)
}

// handleCrisis is the hard short-circuit: fixed hotline message, no
// classifier, no retrieval, no generation, no memory write.
func (e *Engine) handleCrisis(sess *history.Session, m mode.Mode, text, sessionID string) Reply {
	msg := mode.CrisisMessage(m.ID)
	sess.History().Append(history.Turn{UserText: text, AgentText: msg, Emotion: emotion.LabelCrisis})
	e.logger.Info("crisis short-circuit", "user_id", sess.UserID, "session_id", sessionID, "mode", m.ID)
	return Reply{
		SessionID: sessionID,
		Text:      msg,
		Emotion:   emotion.LabelCrisis,
		Fruit:     emotion.CrisisFruit,
		State:     StateCrisis,
	}
}

// handleGreeting issues a lightweight generation call with no retrieval.
func (e *Engine) handleGreeting(ctx context.Context, sess *history.Session, m mode.Mode, text, sessionID string) (Reply, error) {
	prompt, err := BuildGreetingPrompt(text)
	if err != nil {
		return Reply{}, err
	}
	reply, err := e.generator.Generate(ctx, BuildSystem(m), prompt)
	if err != nil {
		return Reply{}, fmt.Errorf("greeting generation failed: %w", err)
	}
	sess.History().Append(history.Turn{UserText: text, AgentText: reply, Emotion: emotion.LabelNeutral})
	return Reply{
		SessionID: sessionID,
		Text:      reply,
		Emotion:   emotion.LabelNeutral,
		Fruit:     emotion.Fruit(emotion.LabelNeutral),
		State:     StateGreeting,
	}, nil
}

// handleNormal runs the full pipeline.
func (e *Engine) handleNormal(ctx context.Context, sess *history.Session, m mode.Mode, text, sessionID string) (Reply, error) {
	intensity, err := e.classifier.Classify(ctx, text)
	if err != nil {
		e.logger.Warn("emotion classification failed, defaulting to neutral", "error", err)
		intensity = emotion.Neutral()
	}
	fruit := emotion.Fruit(intensity.Label)

	contextBlob, historyBlob := e.assembler.Assemble(ctx, sess.UserID, text, sess.History())

	prompt, err := BuildPrompt(PromptInputs{
		Mode:        m,
		Tone:        BuildTone(m, intensity.Label),
		Context:     contextBlob,
		History:     historyBlob,
		Emotion:     intensity.Label,
		Fruit:       fruit,
		Intensity:   intensity.Confidence,
		UserMessage: text,
	})
	if err != nil {
		return Reply{}, err
	}

	reply, err := e.generator.Generate(ctx, BuildSystem(m), prompt)
	if err != nil {
		// Turn-fatal: no partial reply, and the history stays untouched.
		return Reply{}, fmt.Errorf("generation failed: %w", err)
	}

	sess.History().Append(history.Turn{UserText: text, AgentText: reply, Emotion: intensity.Label})
	e.memories.Remember(ctx, sess.UserID, text, intensity.Label, fruit, intensity.Confidence)

	return Reply{
		SessionID: sessionID,
		Text:      reply,
		Emotion:   intensity.Label,
		Fruit:     fruit,
		State:     StateNormal,
	}, nil
}

// EndSession tears the session down, running the store's teardown hook
// (session log write and summarization) exactly once.
func (e *Engine) EndSession(userID, sessionID string) {
	e.sessions.End(userID, sessionID)
}
