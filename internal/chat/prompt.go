package chat

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/slurpylabs/slurpy/internal/mode"
)

// replyLengthDirective is appended to every mode's system instruction.
const replyLengthDirective = " Keep replies short."

const promptTemplateText = `You are replying in your {{.Mode.Name}} persona: {{.Mode.Description}}.
Tone: {{.Tone}}

The user currently sounds {{.Emotion}} (intensity {{printf "%.2f" .Intensity}}, flavor {{.Fruit}}).

{{- if .Context}}

Use the following context to ground your reply:
{{.Context}}
{{- end}}

{{- if .History}}

Recent conversation:
{{.History}}
{{- end}}

User: {{.UserMessage}}`

var promptTemplate = template.Must(template.New("prompt").Parse(promptTemplateText))

const greetingTemplateText = `The user just opened the conversation with: {{printf "%q" .UserMessage}}
Greet them back in character, warmly, in one or two sentences.`

var greetingTemplate = template.Must(template.New("greeting").Parse(greetingTemplateText))

// PromptInputs carries everything the prompt template renders.
type PromptInputs struct {
	Mode        mode.Mode
	Tone        string
	Context     string
	History     string
	Emotion     string
	Fruit       string
	Intensity   float64
	UserMessage string
}

// BuildSystem derives the system-level instruction from the mode.
func BuildSystem(m mode.Mode) string {
	return m.SystemInstruction + replyLengthDirective
}

// BuildTone combines the mode's tone style with the emotion-specific
// adjustment clause. Unmatched emotions contribute nothing.
func BuildTone(m mode.Mode, emotionLabel string) string {
	return m.ToneStyle + mode.ToneAdjustment(emotionLabel)
}

// BuildPrompt renders the full grounded prompt for the generator.
func BuildPrompt(in PromptInputs) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}
	return buf.String(), nil
}

// BuildGreetingPrompt renders the lightweight greeting prompt, used without
// any retrieval context.
func BuildGreetingPrompt(userMessage string) (string, error) {
	var buf bytes.Buffer
	data := struct{ UserMessage string }{UserMessage: userMessage}
	if err := greetingTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to build greeting prompt: %w", err)
	}
	return buf.String(), nil
}
