package recommend

import (
	"reflect"
	"strings"
	"testing"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
	"github.com/SAADSTACK/ergoassess/internal/assess/reba"
	"github.com/SAADSTACK/ergoassess/internal/assess/rula"
)

func rulaResult(final int) rula.Result {
	return rula.Result{FinalScore: final, ActionLevel: rula.ActionLevelFor(final)}
}

func rebaResult(final int) reba.Result {
	return reba.Result{FinalScore: final, RiskLevel: reba.RiskLevelFor(final)}
}

func TestRiskStatementTiers(t *testing.T) {
	cases := []struct {
		name       string
		rulaScore  int
		rebaScore  int
		wantPrefix string
	}{
		{"rula_7_is_critical", 7, 1, "CRITICAL"},
		{"reba_11_is_critical", 1, 11, "CRITICAL"},
		{"rula_6_is_high", 6, 1, "HIGH"},
		{"rula_5_is_high", 5, 1, "HIGH"},
		{"reba_8_is_high", 1, 8, "HIGH"},
		{"rula_4_is_moderate", 4, 1, "MODERATE"},
		{"rula_3_is_moderate", 3, 1, "MODERATE"},
		{"reba_4_is_moderate", 1, 4, "MODERATE"},
		{"rula_2_is_low", 2, 1, "LOW"},
		{"both_minimal_is_low", 1, 1, "LOW"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := Generate(angles.Neutral(), rulaResult(tc.rulaScore), rebaResult(tc.rebaScore))
			if !strings.HasPrefix(report.OverallRiskStatement, tc.wantPrefix) {
				t.Fatalf("risk statement %q does not start with %q", report.OverallRiskStatement, tc.wantPrefix)
			}
			if !strings.Contains(report.OverallRiskStatement, "RULA Score:") {
				t.Errorf("risk statement should interpolate the RULA score")
			}
		})
	}
}

func TestNeckEscalatesToImmediate(t *testing.T) {
	a := angles.Neutral()
	a.NeckFlexion = 25

	shortTerm := rulaResult(3)
	shortTerm.Neck.FinalScore = 3
	report := Generate(a, shortTerm, rebaResult(1))
	if !hasBodyPart(report.ShortTermActions, "neck") {
		t.Errorf("neck score 3 should produce a short-term action")
	}
	if hasBodyPart(report.ImmediateActions, "neck") {
		t.Errorf("neck score 3 should not produce an immediate action")
	}

	immediate := rulaResult(4)
	immediate.Neck.FinalScore = 4
	report = Generate(a, immediate, rebaResult(1))
	if !hasBodyPart(report.ImmediateActions, "neck") {
		t.Fatalf("neck score 4 should escalate to an immediate action")
	}
	for _, rec := range report.ImmediateActions {
		if rec.BodyPart == "neck" && rec.Priority != 1 {
			t.Errorf("escalated neck action priority = %d, want 1", rec.Priority)
		}
	}
}

func TestTrunkEscalatesToImmediate(t *testing.T) {
	a := angles.Neutral()
	a.TrunkFlexion = 65

	res := rulaResult(5)
	res.Trunk.FinalScore = 4
	report := Generate(a, res, rebaResult(1))
	if !hasBodyPart(report.ImmediateActions, "trunk") {
		t.Fatalf("trunk score 4 should escalate to an immediate action")
	}
}

func TestWristTriggers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*angles.AngleSet)
		want   bool
	}{
		{"neutral_wrist_no_action", func(a *angles.AngleSet) {}, false},
		{"flexion_15_no_action", func(a *angles.AngleSet) { a.WristFlexion = 15 }, false},
		{"flexion_16_triggers", func(a *angles.AngleSet) { a.WristFlexion = 16 }, true},
		{"deviation_20_triggers", func(a *angles.AngleSet) { a.WristFlexion = 10; a.WristDeviation = 20 }, true},
		{"extension_20_triggers", func(a *angles.AngleSet) { a.WristExtension = 20 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := angles.Neutral()
			tc.mutate(&a)
			report := Generate(a, rulaResult(1), rebaResult(1))
			if got := hasBodyPart(report.ShortTermActions, "wrist"); got != tc.want {
				t.Fatalf("wrist action present = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLegActions(t *testing.T) {
	a := angles.Neutral()
	a.LegSupported = false
	report := Generate(a, rulaResult(1), rebaResult(1))
	if !hasBodyPart(report.ShortTermActions, "legs") {
		t.Errorf("unsupported legs should produce a short-term action")
	}

	a = angles.Neutral()
	a.LegFlexion = 95
	report = Generate(a, rulaResult(1), rebaResult(1))
	if !hasBodyPart(report.LongTermActions, "legs") {
		t.Errorf("knee flexion beyond 90 should produce a long-term action")
	}
}

func TestWorkstationAndTaskRedesignThresholds(t *testing.T) {
	report := Generate(angles.Neutral(), rulaResult(2), rebaResult(3))
	if len(report.WorkstationAdjustments) != 0 {
		t.Errorf("low scores should not trigger a workstation review")
	}
	if len(report.TaskRedesign) != 0 {
		t.Errorf("low scores should not trigger task redesign")
	}

	report = Generate(angles.Neutral(), rulaResult(3), rebaResult(1))
	if len(report.WorkstationAdjustments) == 0 {
		t.Errorf("RULA 3 should trigger a workstation review")
	}

	report = Generate(angles.Neutral(), rulaResult(1), rebaResult(8))
	if len(report.TaskRedesign) == 0 {
		t.Errorf("REBA 8 should trigger task redesign")
	}
}

func TestTrainingNeeds(t *testing.T) {
	report := Generate(angles.Neutral(), rulaResult(1), rebaResult(1))
	if len(report.TrainingNeeds) != 5 {
		t.Fatalf("baseline training needs = %d entries, want 5", len(report.TrainingNeeds))
	}

	report = Generate(angles.Neutral(), rulaResult(5), rebaResult(1))
	if len(report.TrainingNeeds) != 8 {
		t.Fatalf("high-risk training needs = %d entries, want 8", len(report.TrainingNeeds))
	}
}

func TestMonitoringPlanTiers(t *testing.T) {
	cases := []struct {
		rulaScore int
		rebaScore int
		want      string
	}{
		{7, 1, "IMMEDIATE FOLLOW-UP"},
		{5, 1, "SHORT-TERM MONITORING"},
		{3, 1, "PERIODIC MONITORING"},
		{2, 1, "MAINTENANCE MONITORING"},
	}
	for _, tc := range cases {
		report := Generate(angles.Neutral(), rulaResult(tc.rulaScore), rebaResult(tc.rebaScore))
		if !strings.HasPrefix(report.MonitoringPlan, tc.want) {
			t.Errorf("rula=%d reba=%d: monitoring plan %q does not start with %q",
				tc.rulaScore, tc.rebaScore, report.MonitoringPlan, tc.want)
		}
	}
}

func TestActionsSortedByPriority(t *testing.T) {
	a := angles.Neutral()
	a.NeckTwist = 20
	a.TrunkSideBend = 20
	a.ShoulderRaised = true
	a.WristFlexion = 20
	a.LegSupported = false

	res := rulaResult(5)
	res.UpperArm.FinalScore = 4
	report := Generate(a, res, rebaResult(1))

	for i := 1; i < len(report.ShortTermActions); i++ {
		if report.ShortTermActions[i-1].Priority > report.ShortTermActions[i].Priority {
			t.Fatalf("short-term actions not sorted by priority: %d before %d",
				report.ShortTermActions[i-1].Priority, report.ShortTermActions[i].Priority)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := angles.Neutral()
	a.NeckFlexion = 30
	a.TrunkFlexion = 40
	a.WristDeviation = 20

	res := rulaResult(5)
	res.Neck.FinalScore = 3
	res.Trunk.FinalScore = 3

	first := Generate(a, res, rebaResult(6))
	second := Generate(a, res, rebaResult(6))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports for identical input")
	}
}

func hasBodyPart(items []Recommendation, part string) bool {
	for _, rec := range items {
		if rec.BodyPart == part {
			return true
		}
	}
	return false
}
