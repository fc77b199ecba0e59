package models

// CaptionCue is one caption line with its derived [Start, End) interval
// in seconds. Cues are computed, never authored directly.
type CaptionCue struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
