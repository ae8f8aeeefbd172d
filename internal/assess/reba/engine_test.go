package reba

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
		"trunk":     result.Trunk.FinalScore,
		"neck":      result.Neck.FinalScore,
		"legs":      result.Legs.FinalScore,
		"upper_arm": result.UpperArm.FinalScore,
		"lower_arm": result.LowerArm.FinalScore,
		"wrist":     result.Wrist.FinalScore,
	}
	for name, got := range components {
		if got != 1 {
			t.Errorf("%s component = %d, want 1", name, got)
		}
	}

	if result.ScoreA != 1 || result.ScoreB != 1 || result.ScoreC != 1 {
		t.Errorf("group scores = %d/%d/%d, want 1/1/1", result.ScoreA, result.ScoreB, result.ScoreC)
	}
	if result.ActivityScore != 0 {
		t.Errorf("activity score = %d, want 0", result.ActivityScore)
	}
	if result.FinalScore != 1 {
		t.Errorf("final score = %d, want 1", result.FinalScore)
	}
	if result.RiskLevel.Level != "Negligible" {
		t.Errorf("risk level = %q, want Negligible", result.RiskLevel.Level)
	}
}

func TestCalculateStaticNeutralPosture(t *testing.T) {
	opts := DefaultOptions()
	opts.IsStatic = true
	result := New(opts).Calculate(angles.Neutral())

	if result.ActivityScore != 1 {
		t.Errorf("activity score = %d, want 1", result.ActivityScore)
	}
	if result.FinalScore != 2 {
		t.Errorf("final score = %d, want 2", result.FinalScore)
	}
	if result.RiskLevel.Level != "Low" {
		t.Errorf("risk level = %q, want Low", result.RiskLevel.Level)
	}
}

func TestLoadForceAndCoupling(t *testing.T) {
	engine := New(Options{LoadKg: 12, IsShockLoad: true, Coupling: CouplingPoor})
	result := engine.Calculate(angles.Neutral())

	if result.LoadForce != 3 {
		t.Errorf("load/force score = %d, want 3 (heavy load plus shock, capped)", result.LoadForce)
	}
	if result.Coupling != 2 {
		t.Errorf("coupling score = %d, want 2", result.Coupling)
	}
	if result.ScoreA != result.ScoreARaw+3 {
		t.Errorf("score A = %d, want table value %d plus load 3", result.ScoreA, result.ScoreARaw)
	}
	if result.ScoreB != result.ScoreBRaw+2 {
		t.Errorf("score B = %d, want table value %d plus coupling 2", result.ScoreB, result.ScoreBRaw)
	}
}

func TestCouplingScore(t *testing.T) {
	cases := []struct {
		coupling Coupling
		want     int
	}{
		{CouplingGood, 0},
		{CouplingFair, 1},
		{CouplingPoor, 2},
		{CouplingUnacceptable, 3},
		{Coupling("POOR"), 2},
		{Coupling(""), 0},
		{Coupling("unknown"), 0},
	}
	for _, tc := range cases {
		if got := tc.coupling.Score(); got != tc.want {
			t.Errorf("Coupling(%q).Score() = %d, want %d", tc.coupling, got, tc.want)
		}
	}
}

func TestComponentBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*angles.AngleSet)
		get    func(Result) int
		want   int
	}{
		{"trunk_upright", func(a *angles.AngleSet) {}, func(r Result) int { return r.Trunk.FinalScore }, 1},
		{"trunk_flexion_20_is_low_band", func(a *angles.AngleSet) { a.TrunkFlexion = 20 }, func(r Result) int { return r.Trunk.FinalScore }, 2},
		{"trunk_flexion_60_is_mid_band", func(a *angles.AngleSet) { a.TrunkFlexion = 60 }, func(r Result) int { return r.Trunk.FinalScore }, 3},
		{"trunk_flexion_61_is_high_band", func(a *angles.AngleSet) { a.TrunkFlexion = 61 }, func(r Result) int { return r.Trunk.FinalScore }, 4},
		{"trunk_extension_20_scores_2", func(a *angles.AngleSet) { a.TrunkExtension = 20 }, func(r Result) int { return r.Trunk.FinalScore }, 2},
		{"trunk_extension_21_scores_3", func(a *angles.AngleSet) { a.TrunkExtension = 21 }, func(r Result) int { return r.Trunk.FinalScore }, 3},
		{"neck_flexion_20_is_low_band", func(a *angles.AngleSet) { a.NeckFlexion = 20 }, func(r Result) int { return r.Neck.FinalScore }, 1},
		{"neck_flexion_21_is_high_band", func(a *angles.AngleSet) { a.NeckFlexion = 21 }, func(r Result) int { return r.Neck.FinalScore }, 2},
		{"neck_extension_scores_2", func(a *angles.AngleSet) { a.NeckExtension = 5 }, func(r Result) int { return r.Neck.FinalScore }, 2},
		{"legs_uneven_weight_scores_2", func(a *angles.AngleSet) { a.LegWeightEven = false }, func(r Result) int { return r.Legs.FinalScore }, 2},
		{"knee_flexion_30_adds_one", func(a *angles.AngleSet) { a.LegFlexion = 30 }, func(r Result) int { return r.Legs.FinalScore }, 2},
		{"knee_flexion_60_adds_one", func(a *angles.AngleSet) { a.LegFlexion = 60 }, func(r Result) int { return r.Legs.FinalScore }, 2},
		{"knee_flexion_61_adds_two", func(a *angles.AngleSet) { a.LegFlexion = 61 }, func(r Result) int { return r.Legs.FinalScore }, 3},
		{"wrist_15_is_neutral", func(a *angles.AngleSet) { a.WristFlexion = 15 }, func(r Result) int { return r.Wrist.FinalScore }, 1},
		{"wrist_16_scores_2", func(a *angles.AngleSet) { a.WristFlexion = 16 }, func(r Result) int { return r.Wrist.FinalScore }, 2},
		{"wrist_deviation_adds_one", func(a *angles.AngleSet) { a.WristDeviation = 20 }, func(r Result) int { return r.Wrist.FinalScore }, 2},
		{"wrist_twist_adds_one", func(a *angles.AngleSet) { a.WristTwist = true }, func(r Result) int { return r.Wrist.FinalScore }, 2},
		{"lower_arm_59_scores_2", func(a *angles.AngleSet) { a.LowerArmFlexion = 59 }, func(r Result) int { return r.LowerArm.FinalScore }, 2},
		{"lower_arm_100_scores_1", func(a *angles.AngleSet) { a.LowerArmFlexion = 100 }, func(r Result) int { return r.LowerArm.FinalScore }, 1},
		{"upper_arm_extension_beyond_20_scores_3", func(a *angles.AngleSet) { a.UpperArmFlexion = -21 }, func(r Result) int { return r.UpperArm.FinalScore }, 3},
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

func TestCalculateWorstCase(t *testing.T) {
	a := angles.AngleSet{
		NeckExtension:     10,
		NeckTwist:         20,
		NeckSideBend:      20,
		TrunkFlexion:      70,
		TrunkTwist:        20,
		TrunkSideBend:     20,
		UpperArmFlexion:   95,
		UpperArmAbduction: 50,
		ShoulderRaised:    true,
		LowerArmFlexion:   30,
		WristFlexion:      20,
		WristDeviation:    20,
		LegFlexion:        70,
	}

	engine := New(Options{
		LoadKg:         12,
		Coupling:       CouplingUnacceptable,
		IsStatic:       true,
		IsRepeated:     true,
		HasRapidChange: true,
		IsShockLoad:    true,
	})
	result := engine.Calculate(a)

	if result.Trunk.FinalScore != 5 {
		t.Errorf("trunk component = %d, want 5 (clamped)", result.Trunk.FinalScore)
	}
	if result.Neck.FinalScore != 3 {
		t.Errorf("neck component = %d, want 3 (clamped)", result.Neck.FinalScore)
	}
	if result.Legs.FinalScore != 4 {
		t.Errorf("legs component = %d, want 4", result.Legs.FinalScore)
	}
	if result.ScoreA != 12 || result.ScoreB != 12 {
		t.Errorf("group scores = %d/%d, want 12/12", result.ScoreA, result.ScoreB)
	}
	if result.ScoreC != 12 {
		t.Errorf("score C = %d, want 12", result.ScoreC)
	}
	if result.ActivityScore != 3 {
		t.Errorf("activity score = %d, want 3", result.ActivityScore)
	}
	if result.FinalScore != 15 {
		t.Errorf("final score = %d, want 15", result.FinalScore)
	}
	if result.RiskLevel.Level != "Very High" {
		t.Errorf("risk level = %q, want Very High", result.RiskLevel.Level)
	}
}

func TestRiskLevelFor(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{1, "Negligible"},
		{2, "Low"}, {3, "Low"},
		{4, "Medium"}, {7, "Medium"},
		{8, "High"}, {10, "High"},
		{11, "Very High"}, {15, "Very High"},
	}
	for _, tc := range cases {
		if got := RiskLevelFor(tc.score); got.Level != tc.want {
			t.Errorf("RiskLevelFor(%d).Level = %q, want %q", tc.score, got.Level, tc.want)
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	a := angles.Neutral()
	a.TrunkFlexion = 35
	a.NeckFlexion = 25
	a.LegFlexion = 45
	a.WristTwist = true

	engine := New(Options{LoadKg: 7, Coupling: CouplingFair, IsStatic: true})
	first := engine.Calculate(a)
	second := engine.Calculate(a)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical input")
	}
}

func TestScoreRangesHoldForRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	engine := New(Options{
		LoadKg:         15,
		Coupling:       CouplingUnacceptable,
		IsStatic:       true,
		IsRepeated:     true,
		HasRapidChange: true,
		IsShockLoad:    true,
	})

	for i := 0; i < 500; i++ {
		a := angles.AngleSet{
			NeckFlexion:       rng.Float64()*200 - 50,
			NeckExtension:     rng.Float64() * 60,
			NeckTwist:         rng.Float64()*60 - 30,
			NeckSideBend:      rng.Float64()*60 - 30,
			TrunkFlexion:      rng.Float64() * 120,
			TrunkExtension:    rng.Float64() * 40,
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
			LegFlexion:        rng.Float64() * 120,
			LegSupported:      rng.Intn(2) == 0,
			LegWeightEven:     rng.Intn(2) == 0,
		}
		r := engine.Calculate(a)

		checks := []struct {
			name   string
			v      int
			lo, hi int
		}{
			{"trunk", r.Trunk.FinalScore, 1, 5},
			{"neck", r.Neck.FinalScore, 1, 3},
			{"legs", r.Legs.FinalScore, 1, 4},
			{"upper_arm", r.UpperArm.FinalScore, 1, 6},
			{"lower_arm", r.LowerArm.FinalScore, 1, 2},
			{"wrist", r.Wrist.FinalScore, 1, 3},
			{"score_a", r.ScoreA, 1, 12},
			{"score_b", r.ScoreB, 1, 12},
			{"score_c", r.ScoreC, 1, 12},
			{"final", r.FinalScore, 1, 15},
		}
		for _, c := range checks {
			if c.v < c.lo || c.v > c.hi {
				t.Fatalf("iteration %d: %s = %d outside [%d,%d]", i, c.name, c.v, c.lo, c.hi)
			}
		}
	}
}
