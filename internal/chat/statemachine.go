// Package chat is the conversation orchestration core: response-strategy
// dispatch, context assembly, prompt construction, and turn processing.
package chat

import "strings"

// State is the response strategy chosen for one message. Classified per
// message; nothing persists across turns beyond the history itself.
type State int

const (
	StateNormal State = iota
	StateCrisis
	StateGreeting
	StateFarewell
)

func (s State) String() string {
	switch s {
	case StateCrisis:
		return "crisis"
	case StateGreeting:
		return "greeting"
	case StateFarewell:
		return "farewell"
	default:
		return "normal"
	}
}

// DetectOptions gates the auxiliary short-circuits. The interactive surface
// enables both; the gateway surface disables them and always runs the full
// pipeline. Crisis detection is not an option and cannot be disabled.
type DetectOptions struct {
	Greetings bool
	Farewells bool
}

// crisisPhrases are matched as case-insensitive substrings. First match wins
// over every other state.
var crisisPhrases = []string{
	"kill myself",
	"end my life",
	"want to die",
	"wanna die",
	"suicide",
	"suicidal",
	"self harm",
	"self-harm",
	"hurt myself",
	"hurting myself",
	"harm myself",
	"harming myself",
	"end it all",
	"want to end it",
	"no reason to live",
	"better off dead",
	"giving up on life",
	"can't go on",
}

// greetingTokens are matched as prefixes of the trimmed message.
var greetingTokens = []string{
	"hi",
	"hello",
	"hey",
	"yo",
	"howdy",
	"good morning",
	"good afternoon",
	"good evening",
}

// farewellTokens are matched as substrings anywhere in the message.
var farewellTokens = []string{
	"bye",
	"goodbye",
	"see you",
	"see ya",
	"talk later",
	"talk to you later",
	"gotta go",
	"good night",
	"farewell",
}

// Detect classifies one message. Ordering is fixed: crisis pre-empts
// everything, then greeting, then farewell, then normal.
func Detect(text string, opts DetectOptions) State {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, phrase := range crisisPhrases {
		if strings.Contains(lower, phrase) {
			return StateCrisis
		}
	}
	if opts.Greetings {
		for _, token := range greetingTokens {
			if lower == token || strings.HasPrefix(lower, token+" ") || strings.HasPrefix(lower, token+",") || strings.HasPrefix(lower, token+"!") {
				return StateGreeting
			}
		}
	}
	if opts.Farewells {
		for _, token := range farewellTokens {
			if strings.Contains(lower, token) {
				return StateFarewell
			}
		}
	}
	return StateNormal
}
