// Package reba implements the Rapid Entire Body Assessment scoring method
// (Hignett & McAtamney 2000). All scoring is deterministic table lookup; an
// Engine is a pure function of its options and the supplied angle set.
package reba

import (
	"fmt"
	"strings"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
	"github.com/SAADSTACK/ergoassess/internal/assess/score"
)

// Coupling grades the quality of the hand/object grip.
type Coupling string

const (
	CouplingGood         Coupling = "good"
	CouplingFair         Coupling = "fair"
	CouplingPoor         Coupling = "poor"
	CouplingUnacceptable Coupling = "unacceptable"
)

// Score returns the coupling adjustment. Lookup is case-insensitive and an
// unrecognized value scores as good rather than failing.
func (c Coupling) Score() int {
	switch Coupling(strings.ToLower(string(c))) {
	case CouplingFair:
		return 1
	case CouplingPoor:
		return 2
	case CouplingUnacceptable:
		return 3
	default:
		return 0
	}
}

// Options is the task context attached to an Engine. It is not mutated after
// construction, so a single Engine is safe for concurrent Calculate calls.
type Options struct {
	LoadKg         float64  `json:"loadKg"`
	Coupling       Coupling `json:"coupling"`
	IsStatic       bool     `json:"isStatic"`
	IsRepeated     bool     `json:"isRepeated"`
	HasRapidChange bool     `json:"hasRapidChange"`
	IsShockLoad    bool     `json:"isShockLoad"`
}

// DefaultOptions returns the engine defaults: no load, good coupling.
func DefaultOptions() Options {
	return Options{Coupling: CouplingGood}
}

// Result is a complete REBA assessment produced by one Calculate call.
type Result struct {
	Trunk score.ComponentScore `json:"trunk"`
	Neck  score.ComponentScore `json:"neck"`
	Legs  score.ComponentScore `json:"legs"`

	UpperArm score.ComponentScore `json:"upperArm"`
	LowerArm score.ComponentScore `json:"lowerArm"`
	Wrist    score.ComponentScore `json:"wrist"`

	ScoreARaw int `json:"scoreARaw"`
	LoadForce int `json:"loadForce"`
	ScoreA    int `json:"scoreA"`

	ScoreBRaw int `json:"scoreBRaw"`
	Coupling  int `json:"coupling"`
	ScoreB    int `json:"scoreB"`

	ScoreC        int `json:"scoreC"`
	ActivityScore int `json:"activityScore"`

	// FinalScore is ScoreC plus the activity score. It is intentionally not
	// clamped; the ceiling is 15 (score C max 12 plus activity max 3).
	FinalScore int       `json:"finalScore"`
	RiskLevel  RiskLevel `json:"riskLevel"`
}

// Engine scores whole-body posture.
type Engine struct {
	opts Options
}

// New constructs an Engine with the given task context.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Calculate scores the supplied angle set. It is a pure function of the
// angles and the engine options; no state is shared between calls.
func (e *Engine) Calculate(a angles.AngleSet) Result {
	var r Result

	r.Trunk = scoreTrunk(a)
	r.Neck = scoreNeck(a)
	r.Legs = scoreLegs(a)

	r.UpperArm = scoreUpperArm(a)
	r.LowerArm = scoreLowerArm(a)
	r.Wrist = scoreWrist(a)

	r.ScoreARaw = lookupTableA(r.Trunk.FinalScore, r.Neck.FinalScore, r.Legs.FinalScore)
	r.LoadForce = e.loadForceScore()
	r.ScoreA = r.ScoreARaw + r.LoadForce

	r.ScoreBRaw = lookupTableB(r.UpperArm.FinalScore, r.LowerArm.FinalScore, r.Wrist.FinalScore)
	r.Coupling = e.opts.Coupling.Score()
	r.ScoreB = r.ScoreBRaw + r.Coupling

	r.ScoreC = lookupTableC(r.ScoreA, r.ScoreB)
	r.ActivityScore = e.activityScore()
	r.FinalScore = r.ScoreC + r.ActivityScore
	r.RiskLevel = RiskLevelFor(score.Clamp(r.FinalScore, 1, 15))

	return r
}

func scoreTrunk(a angles.AngleSet) score.ComponentScore {
	angle := a.TrunkFlexion

	var raw int
	var threshold string
	switch {
	case angle == 0:
		raw = 1
		threshold = "Upright"
	case angle <= 20:
		raw = 2
		threshold = "0°-20° flexion"
	case angle <= 60:
		raw = 3
		threshold = "20°-60° flexion"
	default:
		raw = 4
		threshold = ">60° flexion"
	}

	// Extension overrides the flexion banding.
	if a.TrunkExtension > 0 {
		if a.TrunkExtension <= 20 {
			raw = 2
			threshold = "0°-20° extension"
		} else {
			raw = 3
			threshold = ">20° extension"
		}
	}

	var mods []string
	total := raw
	if abs(a.TrunkTwist) > 10 {
		mods = append(mods, "+1 trunk twisted")
		total++
	}
	if abs(a.TrunkSideBend) > 10 {
		mods = append(mods, "+1 trunk side-bending")
		total++
	}

	return score.ComponentScore{
		RawScore:   raw,
		Modifiers:  mods,
		FinalScore: score.Clamp(total, 1, 5),
		Angle:      angle,
		Threshold:  threshold,
	}
}

func scoreNeck(a angles.AngleSet) score.ComponentScore {
	angle := a.NeckFlexion

	raw := 1
	threshold := "0°-20° flexion"
	if angle < 0 || angle > 20 {
		raw = 2
		threshold = ">20° flexion"
	}
	if a.NeckExtension > 0 {
		raw = 2
		threshold = "In extension"
	}

	var mods []string
	total := raw
	if abs(a.NeckTwist) > 10 {
		mods = append(mods, "+1 neck twisted")
		total++
	}
	if abs(a.NeckSideBend) > 10 {
		mods = append(mods, "+1 neck side-bending")
		total++
	}

	return score.ComponentScore{
		RawScore:   raw,
		Modifiers:  mods,
		FinalScore: score.Clamp(total, 1, 3),
		Angle:      angle,
		Threshold:  threshold,
	}
}

func scoreLegs(a angles.AngleSet) score.ComponentScore {
	raw := 2
	threshold := "Unilateral weight bearing"
	if a.LegWeightEven {
		raw = 1
		threshold = "Bilateral weight bearing"
	}

	// Knee flexion bands are mutually exclusive, not additive.
	var mods []string
	total := raw
	if a.LegFlexion >= 30 && a.LegFlexion <= 60 {
		mods = append(mods, "+1 knees 30°-60° flexion")
		total++
	} else if a.LegFlexion > 60 {
		mods = append(mods, "+2 knees >60° flexion")
		total += 2
	}

	return score.ComponentScore{
		RawScore:   raw,
		Modifiers:  mods,
		FinalScore: score.Clamp(total, 1, 4),
		Angle:      a.LegFlexion,
		Threshold:  threshold,
	}
}

func scoreUpperArm(a angles.AngleSet) score.ComponentScore {
	angle := a.UpperArmFlexion

	var raw int
	var threshold string
	switch {
	case angle >= -20 && angle <= 20:
		raw = 1
		threshold = "20° extension to 20° flexion"
	case angle > 20 && angle <= 45:
		raw = 2
		threshold = "20°-45° flexion"
	case angle > 45 && angle <= 90:
		raw = 3
		threshold = "45°-90° flexion"
	case angle > 90:
		raw = 4
		threshold = ">90° flexion"
	default:
		raw = 3
		threshold = ">20° extension"
	}

	var mods []string
	total := raw
	if a.ShoulderRaised {
		mods = append(mods, "+1 shoulder raised")
		total++
	}
	if a.UpperArmAbduction > 45 {
		mods = append(mods, "+1 arm abducted")
		total++
	}
	if a.ArmSupported {
		mods = append(mods, "-1 arm supported")
		total--
	}

	return score.ComponentScore{
		RawScore:   raw,
		Modifiers:  mods,
		FinalScore: score.Clamp(total, 1, 6),
		Angle:      angle,
		Threshold:  threshold,
	}
}

func scoreLowerArm(a angles.AngleSet) score.ComponentScore {
	angle := a.LowerArmFlexion

	raw := 2
	threshold := "<60° or >100° flexion"
	if angle >= 60 && angle <= 100 {
		raw = 1
		threshold = "60°-100° flexion"
	}

	return score.ComponentScore{
		RawScore:   raw,
		FinalScore: raw,
		Angle:      angle,
		Threshold:  threshold,
	}
}

func scoreWrist(a angles.AngleSet) score.ComponentScore {
	angle := a.WristFlexion
	if a.WristExtension > angle {
		angle = a.WristExtension
	}

	raw := 1
	threshold := "0°-15° flexion/extension"
	if angle > 15 {
		raw = 2
		threshold = ">15° flexion/extension"
	}

	var mods []string
	total := raw
	if a.WristDeviation > 15 || a.WristTwist {
		mods = append(mods, "+1 wrist bent/twisted")
		total++
	}

	return score.ComponentScore{
		RawScore:   raw,
		Modifiers:  mods,
		FinalScore: score.Clamp(total, 1, 3),
		Angle:      angle,
		Threshold:  threshold,
	}
}

func lookupTableA(trunk, neck, legs int) int {
	t := score.Clamp(trunk, 1, 5)
	n := score.Clamp(neck, 1, 3)
	l := score.Clamp(legs, 1, 4)
	return tableA[t-1][n-1][l-1]
}

func lookupTableB(upperArm, lowerArm, wrist int) int {
	ua := score.Clamp(upperArm, 1, 6)
	la := score.Clamp(lowerArm, 1, 2)
	w := score.Clamp(wrist, 1, 3)
	return tableB[ua-1][la-1][w-1]
}

func lookupTableC(scoreA, scoreB int) int {
	a := score.Clamp(scoreA, 1, 12)
	b := score.Clamp(scoreB, 1, 12)
	return tableC[a-1][b-1]
}

func (e *Engine) loadForceScore() int {
	var base int
	switch {
	case e.opts.LoadKg < 5:
		base = 0
	case e.opts.LoadKg <= 10:
		base = 1
	default:
		base = 2
	}
	if e.opts.IsShockLoad {
		base++
	}
	if base > 3 {
		base = 3
	}
	return base
}

func (e *Engine) activityScore() int {
	total := 0
	if e.opts.IsStatic {
		total++
	}
	if e.opts.IsRepeated {
		total++
	}
	if e.opts.HasRapidChange {
		total++
	}
	if total > 3 {
		total = 3
	}
	return total
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Summary renders a short human-readable breakdown of a result.
func Summary(r Result) string {
	return fmt.Sprintf(
		"REBA %d (%s): group A %d (table %d, load %d), group B %d (table %d, coupling %d), score C %d, activity %d",
		r.FinalScore, r.RiskLevel.Level,
		r.ScoreA, r.ScoreARaw, r.LoadForce,
		r.ScoreB, r.ScoreBRaw, r.Coupling,
		r.ScoreC, r.ActivityScore,
	)
}
