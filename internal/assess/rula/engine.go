// Package rula implements the Rapid Upper Limb Assessment scoring method
// (McAtamney & Corlett 1993). All scoring is deterministic table lookup; an
// Engine is a pure function of its options and the supplied angle set.
package rula

import (
	"fmt"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
	"github.com/SAADSTACK/ergoassess/internal/assess/score"
)

// Options is the task context attached to an Engine. It is not mutated after
// construction, so a single Engine is safe for concurrent Calculate calls.
type Options struct {
	// IsStatic marks a posture held mainly static (>1 min). Assessments
	// default this to true.
	IsStatic     bool    `json:"isStatic"`
	LoadKg       float64 `json:"loadKg"`
	IsRepetitive bool    `json:"isRepetitive"`
	IsShockLoad  bool    `json:"isShockLoad"`
}

// DefaultOptions returns the engine defaults: a static posture with no load.
func DefaultOptions() Options {
	return Options{IsStatic: true}
}

// Result is a complete RULA assessment produced by one Calculate call.
type Result struct {
	UpperArm   score.ComponentScore `json:"upperArm"`
	LowerArm   score.ComponentScore `json:"lowerArm"`
	Wrist      score.ComponentScore `json:"wrist"`
	WristTwist score.ComponentScore `json:"wristTwist"`
	Neck       score.ComponentScore `json:"neck"`
	Trunk      score.ComponentScore `json:"trunk"`
	Legs       score.ComponentScore `json:"legs"`

	ScoreARaw int `json:"scoreARaw"`
	ScoreA    int `json:"scoreA"`
	ScoreBRaw int `json:"scoreBRaw"`
	ScoreB    int `json:"scoreB"`
	MuscleUse int `json:"muscleUse"`
	ForceLoad int `json:"forceLoad"`

	FinalScore  int         `json:"finalScore"`
	ActionLevel ActionLevel `json:"actionLevel"`
}

// Engine scores upper-limb posture.
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

	r.UpperArm = scoreUpperArm(a)
	r.LowerArm = scoreLowerArm(a)
	r.Wrist = scoreWrist(a)
	r.WristTwist = scoreWristTwist(a)
	r.Neck = scoreNeck(a)
	r.Trunk = scoreTrunk(a)
	r.Legs = scoreLegs(a)

	r.ScoreARaw = lookupTableA(r.UpperArm.FinalScore, r.LowerArm.FinalScore, r.Wrist.FinalScore, r.WristTwist.FinalScore)
	r.ScoreBRaw = lookupTableB(r.Neck.FinalScore, r.Trunk.FinalScore, r.Legs.FinalScore)

	// Muscle use and force/load adjustments apply identically to both groups.
	r.MuscleUse = e.muscleUseScore()
	r.ForceLoad = e.forceLoadScore()
	r.ScoreA = score.Clamp(r.ScoreARaw+r.MuscleUse+r.ForceLoad, 1, 8)
	r.ScoreB = score.Clamp(r.ScoreBRaw+r.MuscleUse+r.ForceLoad, 1, 7)

	r.FinalScore = tableC[r.ScoreA-1][r.ScoreB-1]
	r.ActionLevel = ActionLevelFor(r.FinalScore)

	return r
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
		// Extension beyond 20° behind the body. The published diagram rates
		// this comparably to moderate flexion.
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
		mods = append(mods, "+1 arm abducted >45°")
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

	var raw int
	var threshold string
	if angle >= 60 && angle <= 100 {
		raw = 1
		threshold = "60°-100° flexion (optimal)"
	} else {
		raw = 2
		threshold = "<60° or >100° flexion"
	}

	var mods []string
	total := raw
	if a.LowerArmAcrossMidline {
		mods = append(mods, "+1 arm across midline")
		total++
	}
	if a.UpperArmAbduction > 30 {
		mods = append(mods, "+1 arm out to side")
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

func scoreWrist(a angles.AngleSet) score.ComponentScore {
	// Whichever is greater, flexion or extension.
	angle := a.WristFlexion
	if a.WristExtension > angle {
		angle = a.WristExtension
	}

	var raw int
	var threshold string
	switch {
	case angle == 0:
		raw = 1
		threshold = "Neutral position"
	case angle <= 15:
		raw = 2
		threshold = "0°-15° flexion/extension"
	default:
		raw = 3
		threshold = ">15° flexion/extension"
	}

	var mods []string
	total := raw
	if a.WristDeviation > 15 {
		mods = append(mods, "+1 wrist deviated from midline")
		total++
	}

	return score.ComponentScore{
		RawScore:   raw,
		Modifiers:  mods,
		FinalScore: score.Clamp(total, 1, 4),
		Angle:      angle,
		Threshold:  threshold,
	}
}

func scoreWristTwist(a angles.AngleSet) score.ComponentScore {
	raw := 1
	threshold := "Mid-range of twist"
	if a.WristTwist {
		raw = 2
		threshold = "Near end of twisting range"
	}
	return score.ComponentScore{
		RawScore:   raw,
		FinalScore: raw,
		Threshold:  threshold,
	}
}

func scoreNeck(a angles.AngleSet) score.ComponentScore {
	var raw int
	var threshold string
	switch {
	case a.NeckExtension > 0:
		raw = 4
		threshold = "Neck in extension"
	case a.NeckFlexion <= 10:
		raw = 1
		threshold = "0°-10° flexion"
	case a.NeckFlexion <= 20:
		raw = 2
		threshold = "10°-20° flexion"
	default:
		raw = 3
		threshold = ">20° flexion"
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
		FinalScore: score.Clamp(total, 1, 6),
		Angle:      a.NeckFlexion,
		Threshold:  threshold,
	}
}

func scoreTrunk(a angles.AngleSet) score.ComponentScore {
	angle := a.TrunkFlexion

	var raw int
	var threshold string
	switch {
	case angle == 0:
		raw = 1
		threshold = "Upright/well supported"
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
		FinalScore: score.Clamp(total, 1, 6),
		Angle:      angle,
		Threshold:  threshold,
	}
}

func scoreLegs(a angles.AngleSet) score.ComponentScore {
	raw := 2
	threshold := "Legs not supported or weight uneven"
	if a.LegSupported && a.LegWeightEven {
		raw = 1
		threshold = "Legs supported, weight balanced"
	}
	return score.ComponentScore{
		RawScore:   raw,
		FinalScore: raw,
		Angle:      a.LegFlexion,
		Threshold:  threshold,
	}
}

func lookupTableA(upperArm, lowerArm, wrist, wristTwist int) int {
	ua := score.Clamp(upperArm, 1, 6)
	la := score.Clamp(lowerArm, 1, 3)
	w := score.Clamp(wrist, 1, 4)
	wt := score.Clamp(wristTwist, 1, 2)
	return tableA[ua-1][la-1][w-1][wt-1]
}

func lookupTableB(neck, trunk, legs int) int {
	n := score.Clamp(neck, 1, 6)
	t := score.Clamp(trunk, 1, 6)
	l := score.Clamp(legs, 1, 2)
	return tableB[n-1][t-1][l-1]
}

func (e *Engine) muscleUseScore() int {
	if e.opts.IsStatic || e.opts.IsRepetitive {
		return 1
	}
	return 0
}

func (e *Engine) forceLoadScore() int {
	switch {
	case e.opts.IsShockLoad:
		return 3
	case e.opts.LoadKg > 10:
		if e.opts.IsStatic {
			return 3
		}
		return 2
	case e.opts.LoadKg >= 2:
		if e.opts.IsStatic {
			return 2
		}
		return 1
	default:
		return 0
	}
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
		"RULA %d (action level %d): group A %d (table %d, muscle %d, force %d), group B %d (table %d)",
		r.FinalScore, r.ActionLevel.Level,
		r.ScoreA, r.ScoreARaw, r.MuscleUse, r.ForceLoad,
		r.ScoreB, r.ScoreBRaw,
	)
}
