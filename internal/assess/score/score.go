// Package score holds the shared result shapes for per-body-region scoring.
package score

// ComponentScore is the outcome of scoring one body region: the banded raw
// score, the human-readable modifiers that were applied, and the final score
// clamped to the region's valid range.
type ComponentScore struct {
	RawScore   int      `json:"rawScore"`
	Modifiers  []string `json:"modifiers"`
	FinalScore int      `json:"finalScore"`
	Angle      float64  `json:"angle"`
	Threshold  string   `json:"threshold"`
}

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
