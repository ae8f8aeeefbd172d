// Package recommend derives a prioritized ergonomic action plan from RULA and
// REBA assessment results plus the measured joint angles. All guidance text is
// aligned with ISO 11226/11228 and HSE display-screen-equipment standards; the
// derivation itself is deterministic.
package recommend

import (
	"fmt"
	"sort"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
	"github.com/SAADSTACK/ergoassess/internal/assess/reba"
	"github.com/SAADSTACK/ergoassess/internal/assess/rula"
)

// Generate builds the complete recommendation report. It is a pure function
// of its three inputs.
func Generate(a angles.AngleSet, rulaRes rula.Result, rebaRes reba.Result) Report {
	report := Report{
		OverallRiskStatement: riskStatement(rulaRes, rebaRes),
	}

	addNeck(&report, a, rulaRes, rebaRes)
	addTrunk(&report, a, rulaRes, rebaRes)
	addUpperArm(&report, a, rulaRes, rebaRes)
	addLowerArm(&report, a, rulaRes, rebaRes)
	addWrist(&report, a)
	addLegs(&report, a)
	addWorkstation(&report, rulaRes, rebaRes)

	if rulaRes.FinalScore >= 5 || rebaRes.FinalScore >= 8 {
		addTaskRedesign(&report)
	}

	report.TrainingNeeds = trainingNeeds(rulaRes, rebaRes)
	report.MonitoringPlan = monitoringPlan(rulaRes, rebaRes)

	sortByPriority(report.ImmediateActions)
	sortByPriority(report.ShortTermActions)
	sortByPriority(report.LongTermActions)

	return report
}

func riskStatement(rulaRes rula.Result, rebaRes reba.Result) string {
	scores := fmt.Sprintf(
		"RULA Score: %d/7 (Action Level %d), REBA Score: %d/15 (%s Risk).",
		rulaRes.FinalScore, rulaRes.ActionLevel.Level,
		rebaRes.FinalScore, rebaRes.RiskLevel.Level,
	)

	switch {
	case rulaRes.FinalScore >= 7 || rebaRes.FinalScore >= 11:
		return "CRITICAL ERGONOMIC RISK IDENTIFIED. " + scores +
			" Immediate intervention is required to prevent musculoskeletal injury. " +
			"The current posture presents significant risk factors that must be addressed without delay."
	case rulaRes.FinalScore >= 5 || rebaRes.FinalScore >= 8:
		return "HIGH ERGONOMIC RISK DETECTED. " + scores +
			" Investigation and corrective action should be implemented soon. " +
			"Multiple risk factors have been identified requiring workstation modifications."
	case rulaRes.FinalScore >= 3 || rebaRes.FinalScore >= 4:
		return "MODERATE ERGONOMIC RISK PRESENT. " + scores +
			" Further investigation is recommended. Consider implementing suggested improvements " +
			"to enhance workplace ergonomics and reduce potential strain."
	default:
		return "LOW ERGONOMIC RISK. " + scores +
			" Current posture is within acceptable limits. Maintain good practices and " +
			"continue periodic monitoring to ensure sustained ergonomic health."
	}
}

func addNeck(report *Report, a angles.AngleSet, rulaRes rula.Result, rebaRes reba.Result) {
	neckScore := maxInt(rulaRes.Neck.FinalScore, rebaRes.Neck.FinalScore)

	if neckScore >= 3 {
		rec := Recommendation{
			Priority: 2,
			Category: CategoryShortTerm,
			BodyPart: "neck",
			Title:    "Neck Posture Correction Required",
			Description: fmt.Sprintf(
				"Neck flexion of %.1f° exceeds optimal range. Sustained neck flexion increases cervical spine loading.",
				a.NeckFlexion),
			Actions: []string{
				"Position computer monitor at eye level or slightly below",
				"Use a document holder positioned beside the monitor",
				"Ensure adequate lighting to prevent forward leaning",
				"Take micro-breaks every 20 minutes to reset neck position",
				"Perform gentle neck stretches (chin tucks, rotation) hourly",
			},
			StandardsReference:  "ISO 11226 - Neck flexion should be <25° for acceptable posture",
			ExpectedImprovement: "Reducing neck flexion to <20° can decrease RULA/REBA neck scores by 1-2 points",
		}
		if neckScore >= 4 {
			rec.Priority = 1
			rec.Category = CategoryImmediate
			report.ImmediateActions = append(report.ImmediateActions, rec)
		} else {
			report.ShortTermActions = append(report.ShortTermActions, rec)
		}
	}

	if abs(a.NeckTwist) > 10 || abs(a.NeckSideBend) > 10 {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority:    2,
			Category:    CategoryShortTerm,
			BodyPart:    "neck",
			Title:       "Reduce Neck Twisting and Side Bending",
			Description: "Neck rotation and lateral bending increase strain on cervical structures.",
			Actions: []string{
				"Reposition work items to face directly forward",
				"Adjust chair to face primary work area",
				"Consider dual monitor setup if referencing multiple sources",
				"Avoid cradling phone between shoulder and ear",
			},
			StandardsReference: "ISO 11226 - Asymmetric neck postures are conditionally acceptable only",
		})
	}
}

func addTrunk(report *Report, a angles.AngleSet, rulaRes rula.Result, rebaRes reba.Result) {
	trunkScore := maxInt(rulaRes.Trunk.FinalScore, rebaRes.Trunk.FinalScore)

	if trunkScore >= 3 {
		rec := Recommendation{
			Priority: 2,
			Category: CategoryShortTerm,
			BodyPart: "trunk",
			Title:    "Trunk Posture Improvement Needed",
			Description: fmt.Sprintf(
				"Trunk flexion of %.1f° increases spinal loading. Forward bending significantly elevates intervertebral disc pressure.",
				a.TrunkFlexion),
			Actions: []string{
				"Ensure chair provides adequate lumbar support",
				"Adjust seat height so feet are flat on floor",
				"Position work items within easy reach to prevent forward leaning",
				"Consider a sit-stand workstation to vary posture",
				"Maintain natural spinal curves (lordosis) when seated",
			},
			StandardsReference:  "ISO 11226 - Trunk flexion >20° requires support or time limits",
			ExpectedImprovement: "Proper lumbar support can reduce trunk flexion and lower scores by 1-2 points",
		}
		if trunkScore >= 4 {
			rec.Priority = 1
			rec.Category = CategoryImmediate
			report.ImmediateActions = append(report.ImmediateActions, rec)
		} else {
			report.ShortTermActions = append(report.ShortTermActions, rec)
		}
	}

	if abs(a.TrunkSideBend) > 10 {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority:    3,
			Category:    CategoryShortTerm,
			BodyPart:    "trunk",
			Title:       "Address Trunk Asymmetry",
			Description: "Lateral trunk bending or twisting increases risk of back injury.",
			Actions: []string{
				"Position frequently used items centrally",
				"Avoid reaching to the side for heavy items",
				"Use swivel chair to turn rather than twist",
				"Ensure balanced work surface layout",
			},
			StandardsReference: "ISO 11226 - Asymmetric trunk postures not acceptable for sustained work",
		})
	}
}

func addUpperArm(report *Report, a angles.AngleSet, rulaRes rula.Result, rebaRes reba.Result) {
	upperArmScore := maxInt(rulaRes.UpperArm.FinalScore, rebaRes.UpperArm.FinalScore)

	if upperArmScore >= 3 {
		priority := 2
		if upperArmScore >= 4 {
			priority = 1
		}
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority: priority,
			Category: CategoryShortTerm,
			BodyPart: "shoulder",
			Title:    "Shoulder Posture Optimization",
			Description: fmt.Sprintf(
				"Upper arm elevation of %.1f° and abduction of %.1f° increase shoulder muscle fatigue.",
				a.UpperArmFlexion, a.UpperArmAbduction),
			Actions: []string{
				"Lower work surface or raise seating to reduce arm elevation",
				"Position keyboard and mouse close to body",
				"Use armrests to support forearms during typing",
				"Avoid reaching above shoulder height",
				"Take regular breaks to relax shoulder muscles",
			},
			StandardsReference:  "ISO 11226 - Upper arm flexion should be <20° for extended duration",
			ExpectedImprovement: "Reducing arm elevation can significantly reduce muscle fatigue",
		})
	}

	if a.ShoulderRaised {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority:    2,
			Category:    CategoryShortTerm,
			BodyPart:    "shoulder",
			Title:       "Shoulder Elevation Detected",
			Description: "Raised shoulders indicate tension or improper workstation height.",
			Actions: []string{
				"Lower keyboard to allow relaxed shoulders",
				"Ensure armrests are at correct height",
				"Perform shoulder rolls and relaxation exercises",
				"Check for psychological stress contributing to tension",
			},
		})
	}
}

func addLowerArm(report *Report, a angles.AngleSet, rulaRes rula.Result, rebaRes reba.Result) {
	lowerArmScore := maxInt(rulaRes.LowerArm.FinalScore, rebaRes.LowerArm.FinalScore)

	if lowerArmScore >= 2 {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority: 3,
			Category: CategoryShortTerm,
			BodyPart: "elbow",
			Title:    "Elbow Angle Adjustment",
			Description: fmt.Sprintf(
				"Elbow flexion of %.1f° is outside optimal range (60-100°).", a.LowerArmFlexion),
			Actions: []string{
				"Adjust chair or desk height to achieve 90° elbow angle",
				"Position keyboard at elbow height",
				"Use adjustable keyboard tray if needed",
				"Avoid resting elbows on hard surfaces",
			},
			StandardsReference: "Optimal elbow angle is 80-100° for keyboard work",
		})
	}

	if a.LowerArmAcrossMidline {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority:    3,
			Category:    CategoryShortTerm,
			BodyPart:    "elbow",
			Title:       "Arm Crossing Midline",
			Description: "Working across the body midline increases shoulder and back strain.",
			Actions: []string{
				"Reposition work items in front of the user",
				"Center the keyboard with the monitor",
				"Use appropriate mouse positioning",
			},
		})
	}
}

func addWrist(report *Report, a angles.AngleSet) {
	wristAngle := a.WristFlexion
	if a.WristExtension > wristAngle {
		wristAngle = a.WristExtension
	}

	if wristAngle > 15 || a.WristDeviation > 15 {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority: 2,
			Category: CategoryShortTerm,
			BodyPart: "wrist",
			Title:    "Wrist Posture Correction",
			Description: fmt.Sprintf(
				"Wrist deviation from neutral (%.1f°) increases risk of carpal tunnel syndrome and tendon strain.",
				wristAngle),
			Actions: []string{
				"Keep wrists straight and neutral during typing",
				"Consider ergonomic keyboard with split design",
				"Position mouse at same level as keyboard",
				"Use whole arm to move mouse, not just wrist",
				"Avoid resting wrists while actively typing",
				"Use wrist rest only during pauses",
			},
			StandardsReference:  "ISO 11228-3 - Wrist deviation increases biomechanical load",
			ExpectedImprovement: "Neutral wrist position reduces carpal tunnel pressure by up to 50%",
		})
	}

	if a.WristTwist {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority:    3,
			Category:    CategoryShortTerm,
			BodyPart:    "wrist",
			Title:       "Reduce Wrist Pronation/Supination",
			Description: "Wrist rotation at extreme ranges increases forearm muscle strain.",
			Actions: []string{
				"Consider vertical mouse design",
				"Adjust forearm rotation when using mouse",
				"Take breaks during intensive mouse work",
			},
		})
	}
}

func addLegs(report *Report, a angles.AngleSet) {
	if !a.LegSupported || !a.LegWeightEven {
		report.ShortTermActions = append(report.ShortTermActions, Recommendation{
			Priority:    3,
			Category:    CategoryShortTerm,
			BodyPart:    "legs",
			Title:       "Lower Body Support Improvement",
			Description: "Inadequate leg support or uneven weight distribution affects overall posture.",
			Actions: []string{
				"Ensure feet are flat on floor or footrest",
				"Adjust chair height for proper thigh clearance",
				"Use footrest if feet do not reach floor",
				"Distribute weight evenly on both feet",
				"Avoid crossing legs for extended periods",
			},
		})
	}

	if a.LegFlexion > 90 {
		report.LongTermActions = append(report.LongTermActions, Recommendation{
			Priority:    3,
			Category:    CategoryLongTerm,
			BodyPart:    "legs",
			Title:       "Seated Posture Assessment",
			Description: "Excessive knee flexion may indicate chair is too low.",
			Actions: []string{
				"Raise chair to achieve ~90° knee angle",
				"Ensure adequate seat depth",
				"Consider sit-stand desk for posture variation",
			},
		})
	}
}

func addWorkstation(report *Report, rulaRes rula.Result, rebaRes reba.Result) {
	if rulaRes.FinalScore >= 3 || rebaRes.FinalScore >= 4 {
		report.WorkstationAdjustments = append(report.WorkstationAdjustments, Recommendation{
			Priority:    2,
			Category:    CategoryShortTerm,
			BodyPart:    "general",
			Title:       "Workstation Ergonomic Assessment",
			Description: "Multiple postural issues suggest systematic workstation review is needed.",
			Actions: []string{
				"Conduct full workstation ergonomic assessment",
				"Review monitor, keyboard, mouse, and chair positions",
				"Ensure all equipment is adjustable",
				"Consider ergonomic accessories (document holder, footrest)",
				"Verify adequate lighting and reduce glare",
			},
			StandardsReference: "HSE L26 - Display Screen Equipment Regulations",
		})
	}
}

func addTaskRedesign(report *Report) {
	report.TaskRedesign = append(report.TaskRedesign, Recommendation{
		Priority:    1,
		Category:    CategoryImmediate,
		BodyPart:    "general",
		Title:       "Task Redesign Required",
		Description: "High risk scores indicate the need for fundamental task or process changes.",
		Actions: []string{
			"Review task requirements and workflow",
			"Implement job rotation to reduce exposure",
			"Introduce mechanical aids where appropriate",
			"Redistribute tasks to reduce individual load",
			"Consider automation of high-risk tasks",
			"Allow adequate rest breaks based on task demands",
		},
		StandardsReference:  "ISO 11228 - Hierarchy of control measures",
		ExpectedImprovement: "Task redesign can eliminate root causes of ergonomic risk",
	})
}

func trainingNeeds(rulaRes rula.Result, rebaRes reba.Result) []string {
	needs := []string{
		"Ergonomic awareness and good posture principles",
		"Proper workstation setup and adjustment",
		"Recognition of early signs of musculoskeletal discomfort",
		"Stretching and micro-break exercises",
		"Correct manual handling techniques (if applicable)",
	}
	if rulaRes.FinalScore >= 5 || rebaRes.FinalScore >= 8 {
		needs = append(needs,
			"Risk factor identification and reporting",
			"Job-specific ergonomic hazards",
			"Use of ergonomic equipment and aids",
		)
	}
	return needs
}

func monitoringPlan(rulaRes rula.Result, rebaRes reba.Result) string {
	switch {
	case rulaRes.FinalScore >= 7 || rebaRes.FinalScore >= 11:
		return "IMMEDIATE FOLLOW-UP REQUIRED: Re-assess within 1 week after implementing changes. " +
			"Continue weekly monitoring until scores improve to acceptable levels. " +
			"Document all interventions and outcomes."
	case rulaRes.FinalScore >= 5 || rebaRes.FinalScore >= 8:
		return "SHORT-TERM MONITORING: Re-assess within 2 weeks after implementing changes. " +
			"Monthly follow-up assessments recommended for 3 months. " +
			"Track symptom reports and discomfort levels."
	case rulaRes.FinalScore >= 3 || rebaRes.FinalScore >= 4:
		return "PERIODIC MONITORING: Re-assess within 1 month after implementing changes. " +
			"Quarterly assessments recommended to ensure sustained improvement. " +
			"Encourage worker feedback on comfort levels."
	default:
		return "MAINTENANCE MONITORING: Annual ergonomic re-assessment recommended. " +
			"Encourage workers to report any emerging discomfort. " +
			"Review when workstation or tasks change."
	}
}

func sortByPriority(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority < items[j].Priority
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
