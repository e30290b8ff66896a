// Package mode holds the static catalog of personality modes.
package mode

// Mode is an immutable persona configuration.
type Mode struct {
	ID                string
	Emoji             string
	Name              string
	Description       string
	SystemInstruction string
	ToneStyle         string
}

// Registry is a fixed mode catalog built once at startup. It is never
// mutated after construction.
type Registry struct {
	modes     map[string]Mode
	defaultID string
}

// NewRegistry returns the built-in catalog.
func NewRegistry() *Registry {
	return &Registry{
		modes:     builtinModes(),
		defaultID: "friend",
	}
}

// Lookup resolves a mode id. Total: unknown ids resolve to the default mode,
// never an error.
func (r *Registry) Lookup(id string) Mode {
	if m, ok := r.modes[id]; ok {
		return m
	}
	return r.modes[r.defaultID]
}

// Default returns the default mode.
func (r *Registry) Default() Mode {
	return r.modes[r.defaultID]
}

// IDs returns the known mode ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.modes))
	for id := range r.modes {
		ids = append(ids, id)
	}
	return ids
}

// CrisisMessage returns the fixed hotline message for a mode. Modes without
// a dedicated message fall back to the therapist wording.
func CrisisMessage(modeID string) string {
	if msg, ok := crisisMessages[modeID]; ok {
		return msg
	}
	return crisisMessages["therapist"]
}

// ToneAdjustment returns the emotion-specific clause appended to a mode's
// tone style. Emotions outside the table contribute nothing.
func ToneAdjustment(emotionLabel string) string {
	return toneAdjustments[emotionLabel]
}
