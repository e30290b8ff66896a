// Package emotion classifies emotional intensity from free text and maps
// labels to their themed display tokens.
package emotion

// Intensity is transient classifier output for a single message.
type Intensity struct {
	Label      string
	Confidence float64
}

// LabelCrisis is the sentinel label for turns handled by the crisis path.
// It is never produced by a classifier.
const LabelCrisis = "crisis"

// LabelNeutral is the degraded-mode label used when classification fails.
const LabelNeutral = "neutral"

// Neutral returns the zero-confidence fallback intensity.
func Neutral() Intensity {
	return Intensity{Label: LabelNeutral, Confidence: 0.0}
}
