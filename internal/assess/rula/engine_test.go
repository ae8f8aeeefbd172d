package rula

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
)

func TestCalculateNeutralPosture(t *testing.T) {
	engine := New(DefaultOptions())
	result := engine.Calculate(angles.Neutral())

	components := map[string]int{
		"upper_arm":   result.UpperArm.FinalScore,
		"lower_arm":   result.LowerArm.FinalScore,
		"wrist":       result.Wrist.FinalScore,
		"wrist_twist": result.WristTwist.FinalScore,
		"neck":        result.Neck.FinalScore,
		"trunk":       result.Trunk.FinalScore,
		"legs":        result.Legs.FinalScore,
	}
	for name, got := range components {
		if got != 1 {
			t.Errorf("%s component = %d, want 1", name, got)
		}
	}

	if result.ScoreARaw != 1 || result.ScoreBRaw != 1 {
		t.Errorf("raw group scores = %d/%d, want 1/1", result.ScoreARaw, result.ScoreBRaw)
	}
	// Static posture adds the muscle-use point to both groups.
	if result.MuscleUse != 1 || result.ForceLoad != 0 {
		t.Errorf("muscle/force = %d/%d, want 1/0", result.MuscleUse, result.ForceLoad)
	}
	if result.ScoreA != 2 || result.ScoreB != 2 {
		t.Errorf("adjusted group scores = %d/%d, want 2/2", result.ScoreA, result.ScoreB)
	}
	if result.FinalScore != 2 {
		t.Errorf("final score = %d, want 2", result.FinalScore)
	}
	if result.ActionLevel.Level != 1 {
		t.Errorf("action level = %d, want 1", result.ActionLevel.Level)
	}
}

func TestCalculateElevatedPosture(t *testing.T) {
	a := angles.Neutral()
	a.NeckFlexion = 25
	a.TrunkFlexion = 15
	a.UpperArmFlexion = 95
	a.ShoulderRaised = true

	engine := New(Options{IsStatic: true})
	result := engine.Calculate(a)

	if result.Neck.FinalScore != 3 {
		t.Errorf("neck component = %d, want 3", result.Neck.FinalScore)
	}
	if result.UpperArm.RawScore != 4 {
		t.Errorf("upper arm raw = %d, want 4", result.UpperArm.RawScore)
	}
	if result.UpperArm.FinalScore != 5 {
		t.Errorf("upper arm component = %d, want 5", result.UpperArm.FinalScore)
	}
	if result.Trunk.FinalScore != 2 {
		t.Errorf("trunk component = %d, want 2", result.Trunk.FinalScore)
	}

	// Table A: (5,1,1,1) -> 5; +1 muscle use -> score A 6.
	// Table B: (3,2,1) -> 3; +1 muscle use -> score B 4. Table C: (6,4) -> 6.
	if result.ScoreA != 6 || result.ScoreB != 4 {
		t.Fatalf("group scores = %d/%d, want 6/4", result.ScoreA, result.ScoreB)
	}
	if result.FinalScore != 6 {
		t.Errorf("final score = %d, want 6", result.FinalScore)
	}
	if result.ActionLevel.Level != 3 {
		t.Errorf("action level = %d, want 3", result.ActionLevel.Level)
	}
}

func TestComponentBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*angles.AngleSet)
		get    func(Result) int
		want   int
	}{
		{"neck_flexion_10_is_low_band", func(a *angles.AngleSet) { a.NeckFlexion = 10 }, func(r Result) int { return r.Neck.FinalScore }, 1},
		{"neck_flexion_20_is_mid_band", func(a *angles.AngleSet) { a.NeckFlexion = 20 }, func(r Result) int { return r.Neck.FinalScore }, 2},
		{"neck_flexion_21_is_high_band", func(a *angles.AngleSet) { a.NeckFlexion = 21 }, func(r Result) int { return r.Neck.FinalScore }, 3},
		{"neck_extension_overrides_flexion", func(a *angles.AngleSet) { a.NeckExtension = 5 }, func(r Result) int { return r.Neck.FinalScore }, 4},
		{"trunk_upright", func(a *angles.AngleSet) { a.TrunkFlexion = 0 }, func(r Result) int { return r.Trunk.FinalScore }, 1},
		{"trunk_flexion_20_is_low_band", func(a *angles.AngleSet) { a.TrunkFlexion = 20 }, func(r Result) int { return r.Trunk.FinalScore }, 2},
		{"trunk_flexion_60_is_mid_band", func(a *angles.AngleSet) { a.TrunkFlexion = 60 }, func(r Result) int { return r.Trunk.FinalScore }, 3},
		{"trunk_flexion_61_is_high_band", func(a *angles.AngleSet) { a.TrunkFlexion = 61 }, func(r Result) int { return r.Trunk.FinalScore }, 4},
		{"wrist_neutral", func(a *angles.AngleSet) {}, func(r Result) int { return r.Wrist.FinalScore }, 1},
		{"wrist_flexion_15_is_mid_band", func(a *angles.AngleSet) { a.WristFlexion = 15 }, func(r Result) int { return r.Wrist.FinalScore }, 2},
		{"wrist_flexion_16_is_high_band", func(a *angles.AngleSet) { a.WristFlexion = 16 }, func(r Result) int { return r.Wrist.FinalScore }, 3},
		{"wrist_deviation_adds_point", func(a *angles.AngleSet) { a.WristFlexion = 10; a.WristDeviation = 20 }, func(r Result) int { return r.Wrist.FinalScore }, 3},
		{"upper_arm_20_is_neutral", func(a *angles.AngleSet) { a.UpperArmFlexion = 20 }, func(r Result) int { return r.UpperArm.FinalScore }, 1},
		{"upper_arm_45_is_second_band", func(a *angles.AngleSet) { a.UpperArmFlexion = 45 }, func(r Result) int { return r.UpperArm.FinalScore }, 2},
		{"upper_arm_90_is_third_band", func(a *angles.AngleSet) { a.UpperArmFlexion = 90 }, func(r Result) int { return r.UpperArm.FinalScore }, 3},
		{"upper_arm_extension_20_is_neutral", func(a *angles.AngleSet) { a.UpperArmFlexion = -20 }, func(r Result) int { return r.UpperArm.FinalScore }, 1},
		{"upper_arm_extension_beyond_20_scores_3", func(a *angles.AngleSet) { a.UpperArmFlexion = -21 }, func(r Result) int { return r.UpperArm.FinalScore }, 3},
		{"lower_arm_59_is_suboptimal", func(a *angles.AngleSet) { a.LowerArmFlexion = 59 }, func(r Result) int { return r.LowerArm.FinalScore }, 2},
		{"lower_arm_100_is_optimal", func(a *angles.AngleSet) { a.LowerArmFlexion = 100 }, func(r Result) int { return r.LowerArm.FinalScore }, 1},
		{"legs_unsupported_scores_2", func(a *angles.AngleSet) { a.LegSupported = false }, func(r Result) int { return r.Legs.FinalScore }, 2},
		{"wrist_twist_scores_2", func(a *angles.AngleSet) { a.WristTwist = true }, func(r Result) int { return r.WristTwist.FinalScore }, 2},
	}

	engine := New(DefaultOptions())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := angles.Neutral()
			tc.mutate(&a)
			if got := tc.get(engine.Calculate(a)); got != tc.want {
				t.Fatalf("component score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestForceLoadScore(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want int
	}{
		{"no_load", Options{}, 0},
		{"shock_load", Options{IsShockLoad: true}, 3},
		{"heavy_static", Options{LoadKg: 11, IsStatic: true}, 3},
		{"heavy_intermittent", Options{LoadKg: 11}, 2},
		{"moderate_static", Options{LoadKg: 2, IsStatic: true}, 2},
		{"moderate_intermittent", Options{LoadKg: 2}, 1},
		{"light", Options{LoadKg: 1.9, IsStatic: true}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.opts).forceLoadScore(); got != tc.want {
				t.Fatalf("forceLoadScore() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCalculateIdempotent(t *testing.T) {
	a := angles.Neutral()
	a.NeckFlexion = 25
	a.TrunkFlexion = 35
	a.UpperArmFlexion = 50
	a.WristFlexion = 20
	a.WristTwist = true

	engine := New(Options{IsStatic: true, LoadKg: 6, IsRepetitive: true})
	first := engine.Calculate(a)
	second := engine.Calculate(a)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical input")
	}
}

func TestComponentRangesHoldForRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	engine := New(Options{IsStatic: true, LoadKg: 12, IsShockLoad: true})

	for i := 0; i < 500; i++ {
		a := angles.AngleSet{
			NeckFlexion:       rng.Float64()*200 - 50,
			NeckExtension:     rng.Float64() * 60,
			NeckTwist:         rng.Float64()*60 - 30,
			NeckSideBend:      rng.Float64()*60 - 30,
			TrunkFlexion:      rng.Float64() * 120,
			TrunkTwist:        rng.Float64()*60 - 30,
			TrunkSideBend:     rng.Float64()*60 - 30,
			UpperArmFlexion:   rng.Float64()*260 - 90,
			UpperArmAbduction: rng.Float64() * 90,
			ShoulderRaised:    rng.Intn(2) == 0,
			ArmSupported:      rng.Intn(2) == 0,
			LowerArmFlexion:   rng.Float64() * 180,
			WristFlexion:      rng.Float64() * 90,
			WristExtension:    rng.Float64() * 90,
			WristDeviation:    rng.Float64() * 45,
			WristTwist:        rng.Intn(2) == 0,
			LegSupported:      rng.Intn(2) == 0,
			LegWeightEven:     rng.Intn(2) == 0,
		}
		r := engine.Calculate(a)

		checks := []struct {
			name   string
			v      int
			lo, hi int
		}{
			{"upper_arm", r.UpperArm.FinalScore, 1, 6},
			{"lower_arm", r.LowerArm.FinalScore, 1, 3},
			{"wrist", r.Wrist.FinalScore, 1, 4},
			{"wrist_twist", r.WristTwist.FinalScore, 1, 2},
			{"neck", r.Neck.FinalScore, 1, 6},
			{"trunk", r.Trunk.FinalScore, 1, 6},
			{"legs", r.Legs.FinalScore, 1, 2},
			{"score_a", r.ScoreA, 1, 8},
			{"score_b", r.ScoreB, 1, 7},
			{"final", r.FinalScore, 1, 7},
		}
		for _, c := range checks {
			if c.v < c.lo || c.v > c.hi {
				t.Fatalf("iteration %d: %s = %d outside [%d,%d]", i, c.name, c.v, c.lo, c.hi)
			}
		}
	}
}
