// Package justify explains RULA and REBA component scores. Each scored body
// region is mapped back to the official assessment diagram condition it
// matched, the conditions it excluded, and a plain-language account of how
// the raw score and modifiers produced the final score.
package justify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SAADSTACK/ergoassess/internal/assess/reba"
	"github.com/SAADSTACK/ergoassess/internal/assess/rula"
	"github.com/SAADSTACK/ergoassess/internal/assess/score"
)

// Item explains one component score: which diagram condition the measured
// angle matched and why the alternatives did not apply.
type Item struct {
	BodyPart             string   `json:"bodyPart"`
	MeasuredAngle        float64  `json:"measuredAngle"`
	ScoreAssigned        int      `json:"scoreAssigned"`
	DiagramCondition     string   `json:"diagramCondition"`
	ThresholdCrossed     string   `json:"thresholdCrossed"`
	AlternativesExcluded []string `json:"alternativesExcluded"`
	Modifiers            []string `json:"modifiers"`
	DetailedReasoning    string   `json:"detailedReasoning"`
}

// Set maps body parts to their justification.
type Set map[string]Item

// RULA diagram conditions, keyed by raw component score.
var rulaDiagrams = map[string]map[int]string{
	"upperArm": {
		1: "Diagram 1A: Upper arm 20° extension to 20° flexion - Neutral zone",
		2: "Diagram 2A: Upper arm 20°-45° flexion or >20° extension - Mild deviation",
		3: "Diagram 3A: Upper arm 45°-90° flexion - Moderate elevation",
		4: "Diagram 4A: Upper arm >90° flexion - High elevation",
	},
	"lowerArm": {
		1: "Diagram 1B: Lower arm 60°-100° flexion - Optimal elbow angle",
		2: "Diagram 2B: Lower arm <60° or >100° - Extended or acute elbow",
	},
	"wrist": {
		1: "Diagram 1C: Wrist in neutral position",
		2: "Diagram 2C: Wrist 0°-15° flexion/extension - Mild deviation",
		3: "Diagram 3C: Wrist >15° flexion/extension - Significant deviation",
	},
	"neck": {
		1: "Diagram 1D: Neck 0°-10° flexion - Near neutral",
		2: "Diagram 2D: Neck 10°-20° flexion - Mild forward tilt",
		3: "Diagram 3D: Neck >20° flexion - Significant forward bend",
		4: "Diagram 4D: Neck in extension - Backward tilt",
	},
	"trunk": {
		1: "Diagram 1E: Trunk upright/well supported",
		2: "Diagram 2E: Trunk 0°-20° flexion - Slight forward lean",
		3: "Diagram 3E: Trunk 20°-60° flexion - Moderate bend",
		4: "Diagram 4E: Trunk >60° flexion - Significant bend",
	},
	"legs": {
		1: "Diagram 1F: Legs/feet well supported, balanced weight",
		2: "Diagram 2F: Legs/feet not supported or unbalanced",
	},
}

// REBA diagram conditions, keyed by raw component score.
var rebaDiagrams = map[string]map[int]string{
	"trunk": {
		1: "REBA Trunk 1: Upright position",
		2: "REBA Trunk 2: 0°-20° flexion or extension",
		3: "REBA Trunk 3: 20°-60° flexion or >20° extension",
		4: "REBA Trunk 4: >60° flexion",
	},
	"neck": {
		1: "REBA Neck 1: 0°-20° flexion",
		2: "REBA Neck 2: >20° flexion or in extension",
	},
	"legs": {
		1: "REBA Legs 1: Bilateral weight bearing, walking, sitting",
		2: "REBA Legs 2: Unilateral weight bearing or unstable",
	},
	"upperArm": {
		1: "REBA Upper Arm 1: 20° extension to 20° flexion",
		2: "REBA Upper Arm 2: 20°-45° flexion or >20° extension",
		3: "REBA Upper Arm 3: 45°-90° flexion",
		4: "REBA Upper Arm 4: >90° flexion",
	},
	"lowerArm": {
		1: "REBA Lower Arm 1: 60°-100° flexion",
		2: "REBA Lower Arm 2: <60° or >100° flexion",
	},
	"wrist": {
		1: "REBA Wrist 1: 0°-15° flexion/extension",
		2: "REBA Wrist 2: >15° flexion/extension",
	},
}

// RULA justifies every scored RULA component. Pure function of the result.
func RULA(r rula.Result) Set {
	return Set{
		"upperArm": fromComponent("upperArm", r.UpperArm, rulaDiagrams["upperArm"]),
		"lowerArm": fromComponent("lowerArm", r.LowerArm, rulaDiagrams["lowerArm"]),
		"wrist":    fromComponent("wrist", r.Wrist, rulaDiagrams["wrist"]),
		"neck":     fromComponent("neck", r.Neck, rulaDiagrams["neck"]),
		"trunk":    fromComponent("trunk", r.Trunk, rulaDiagrams["trunk"]),
		"legs":     fromComponent("legs", r.Legs, rulaDiagrams["legs"]),
	}
}

// REBA justifies every scored REBA component. Pure function of the result.
func REBA(r reba.Result) Set {
	return Set{
		"trunk":    fromComponent("trunk", r.Trunk, rebaDiagrams["trunk"]),
		"neck":     fromComponent("neck", r.Neck, rebaDiagrams["neck"]),
		"legs":     fromComponent("legs", r.Legs, rebaDiagrams["legs"]),
		"upperArm": fromComponent("upperArm", r.UpperArm, rebaDiagrams["upperArm"]),
		"lowerArm": fromComponent("lowerArm", r.LowerArm, rebaDiagrams["lowerArm"]),
		"wrist":    fromComponent("wrist", r.Wrist, rebaDiagrams["wrist"]),
	}
}

func fromComponent(bodyPart string, cs score.ComponentScore, diagrams map[int]string) Item {
	// Modifiers can push the raw score past the last diagram; the condition
	// stays the one the angle banded into.
	diagramScore := cs.RawScore
	if max := maxKey(diagrams); diagramScore > max {
		diagramScore = max
	}
	condition, ok := diagrams[diagramScore]
	if !ok {
		condition = fmt.Sprintf("Score %d condition", cs.RawScore)
	}

	return Item{
		BodyPart:             bodyPart,
		MeasuredAngle:        cs.Angle,
		ScoreAssigned:        cs.FinalScore,
		DiagramCondition:     condition,
		ThresholdCrossed:     cs.Threshold,
		AlternativesExcluded: excludedAlternatives(diagramScore, diagrams),
		Modifiers:            cs.Modifiers,
		DetailedReasoning:    reasoning(cs, condition),
	}
}

func excludedAlternatives(selected int, diagrams map[int]string) []string {
	scores := make([]int, 0, len(diagrams))
	for s := range diagrams {
		if s != selected {
			scores = append(scores, s)
		}
	}
	sort.Ints(scores)

	out := make([]string, 0, len(scores))
	for _, s := range scores {
		out = append(out, fmt.Sprintf("Score %d: %s", s, diagrams[s]))
	}
	return out
}

func reasoning(cs score.ComponentScore, condition string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Measured angle: %.1f°. This falls within the '%s' range, corresponding to %s. ",
		cs.Angle, cs.Threshold, condition)

	if len(cs.Modifiers) > 0 {
		fmt.Fprintf(&b, "Modifiers applied: %s. ", strings.Join(cs.Modifiers, ", "))
	} else {
		b.WriteString("No modifiers applicable. ")
	}

	if cs.RawScore != cs.FinalScore {
		fmt.Fprintf(&b, "Base score %d adjusted to final score %d.", cs.RawScore, cs.FinalScore)
	} else {
		fmt.Fprintf(&b, "Final score: %d.", cs.FinalScore)
	}
	return b.String()
}

func maxKey(m map[int]string) int {
	max := 0
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}
