package reba

// Lookup tables reproduced verbatim from Hignett & McAtamney (2000).
// All tables are indexed by clamped 1-based component scores minus one.

// tableA combines trunk (1-5), neck (1-3) and legs (1-4) into the Group A
// posture score.
var tableA = [5][3][4]int{
	{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
		{3, 3, 5, 6},
	},
	{
		{2, 3, 4, 5},
		{3, 4, 5, 6},
		{4, 5, 6, 7},
	},
	{
		{2, 4, 5, 6},
		{4, 5, 6, 7},
		{5, 6, 7, 8},
	},
	{
		{3, 5, 6, 7},
		{5, 6, 7, 8},
		{6, 7, 8, 9},
	},
	{
		{4, 6, 7, 8},
		{6, 7, 8, 9},
		{7, 8, 9, 9},
	},
}

// tableB combines upper arm (1-6), lower arm (1-2) and wrist (1-3) into the
// Group B posture score.
var tableB = [6][2][3]int{
	{
		{1, 2, 2},
		{1, 2, 3},
	},
	{
		{1, 2, 3},
		{2, 3, 4},
	},
	{
		{3, 4, 5},
		{4, 5, 5},
	},
	{
		{4, 5, 5},
		{5, 6, 7},
	},
	{
		{6, 7, 8},
		{7, 8, 8},
	},
	{
		{7, 8, 8},
		{8, 9, 9},
	},
}

// tableC combines score A (1-12) and score B (1-12) into score C.
var tableC = [12][12]int{
	{1, 1, 1, 2, 3, 3, 4, 5, 6, 7, 7, 7},
	{1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 7, 8},
	{2, 3, 3, 3, 4, 5, 6, 7, 7, 8, 8, 8},
	{3, 4, 4, 4, 5, 6, 7, 8, 8, 9, 9, 9},
	{4, 4, 4, 5, 6, 7, 8, 8, 9, 9, 9, 9},
	{6, 6, 6, 7, 8, 8, 9, 9, 10, 10, 10, 10},
	{7, 7, 7, 8, 9, 9, 9, 10, 10, 11, 11, 11},
	{8, 8, 8, 9, 10, 10, 10, 10, 10, 11, 11, 11},
	{9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12, 12},
	{10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12, 12},
	{11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12},
	{12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12},
}

// RiskLevel is the categorical severity band for a final REBA score.
type RiskLevel struct {
	Level       string `json:"level"`
	Value       int    `json:"value"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Urgency     string `json:"urgency"`
	Color       string `json:"color"`
}

var (
	riskNegligible = RiskLevel{
		Level:       "Negligible",
		Value:       1,
		Description: "Negligible risk",
		Action:      "None necessary",
		Urgency:     "No action required",
		Color:       "#22c55e",
	}
	riskLow = RiskLevel{
		Level:       "Low",
		Value:       2,
		Description: "Low risk",
		Action:      "Change may be needed",
		Urgency:     "Review when possible",
		Color:       "#84cc16",
	}
	riskMedium = RiskLevel{
		Level:       "Medium",
		Value:       3,
		Description: "Medium risk",
		Action:      "Further investigation, change soon",
		Urgency:     "Within 1-2 weeks",
		Color:       "#eab308",
	}
	riskHigh = RiskLevel{
		Level:       "High",
		Value:       4,
		Description: "High risk",
		Action:      "Investigate and implement change",
		Urgency:     "Soon, within 1 week",
		Color:       "#f97316",
	}
	riskVeryHigh = RiskLevel{
		Level:       "Very High",
		Value:       5,
		Description: "Very high risk",
		Action:      "Implement change immediately",
		Urgency:     "Immediate action required",
		Color:       "#ef4444",
	}
)

// RiskLevelFor maps a final REBA score to its risk band. Scores above the
// published range classify at the top band; the stored final score itself is
// never clamped.
func RiskLevelFor(score int) RiskLevel {
	switch {
	case score <= 1:
		return riskNegligible
	case score <= 3:
		return riskLow
	case score <= 7:
		return riskMedium
	case score <= 10:
		return riskHigh
	default:
		return riskVeryHigh
	}
}
