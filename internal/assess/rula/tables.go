package rula

// Lookup tables reproduced verbatim from McAtamney & Corlett (1993).
// All tables are indexed by clamped 1-based component scores minus one.

// tableA combines upper arm (1-6), lower arm (1-3), wrist (1-4) and wrist
// twist (1-2) into the Group A posture score.
var tableA = [6][3][4][2]int{
	{
		{{1, 2}, {2, 2}, {2, 3}, {3, 3}},
		{{2, 2}, {2, 2}, {3, 3}, {3, 3}},
		{{2, 3}, {3, 3}, {3, 3}, {4, 4}},
	},
	{
		{{2, 3}, {3, 3}, {3, 4}, {4, 4}},
		{{3, 3}, {3, 3}, {3, 4}, {4, 4}},
		{{3, 4}, {4, 4}, {4, 4}, {5, 5}},
	},
	{
		{{3, 3}, {4, 4}, {4, 4}, {5, 5}},
		{{3, 4}, {4, 4}, {4, 4}, {5, 5}},
		{{4, 4}, {4, 4}, {4, 5}, {5, 5}},
	},
	{
		{{4, 4}, {4, 4}, {4, 5}, {5, 5}},
		{{4, 4}, {4, 4}, {4, 5}, {5, 5}},
		{{4, 4}, {4, 5}, {5, 5}, {6, 6}},
	},
	{
		{{5, 5}, {5, 5}, {5, 6}, {6, 7}},
		{{5, 6}, {6, 6}, {6, 7}, {7, 7}},
		{{6, 6}, {6, 7}, {7, 7}, {7, 8}},
	},
	{
		{{7, 7}, {7, 7}, {7, 8}, {8, 9}},
		{{8, 8}, {8, 8}, {8, 9}, {9, 9}},
		{{9, 9}, {9, 9}, {9, 9}, {9, 9}},
	},
}

// tableB combines neck (1-6), trunk (1-6) and legs (1-2) into the Group B
// posture score.
var tableB = [6][6][2]int{
	{{1, 3}, {2, 3}, {3, 4}, {5, 5}, {6, 6}, {7, 7}},
	{{2, 3}, {2, 3}, {4, 5}, {5, 5}, {6, 7}, {7, 7}},
	{{3, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 7}},
	{{5, 5}, {5, 6}, {6, 7}, {7, 7}, {7, 7}, {8, 8}},
	{{7, 7}, {7, 7}, {7, 8}, {8, 8}, {8, 8}, {8, 8}},
	{{8, 8}, {8, 8}, {8, 8}, {8, 9}, {9, 9}, {9, 9}},
}

// tableC combines score A (1-8) and score B (1-7) into the final RULA score.
var tableC = [8][7]int{
	{1, 2, 3, 3, 4, 5, 5},
	{2, 2, 3, 4, 4, 5, 5},
	{3, 3, 3, 4, 4, 5, 6},
	{3, 3, 3, 4, 5, 6, 6},
	{4, 4, 4, 5, 6, 7, 7},
	{4, 4, 5, 6, 6, 7, 7},
	{5, 5, 6, 6, 7, 7, 7},
	{5, 5, 6, 7, 7, 7, 7},
}

// ActionLevel is the categorical severity band for a final RULA score.
type ActionLevel struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Urgency     string `json:"urgency"`
	Color       string `json:"color"`
}

var actionLevels = [4]ActionLevel{
	{
		Level:       1,
		Description: "Acceptable posture",
		Action:      "Posture is acceptable if not maintained or repeated for long periods",
		Urgency:     "None required",
		Color:       "#22c55e",
	},
	{
		Level:       2,
		Description: "Further investigation needed",
		Action:      "Further investigation is needed and changes may be required",
		Urgency:     "Review when possible",
		Color:       "#84cc16",
	},
	{
		Level:       3,
		Description: "Investigation and changes required soon",
		Action:      "Investigation and changes are required soon",
		Urgency:     "Within 1-2 weeks",
		Color:       "#f97316",
	},
	{
		Level:       4,
		Description: "Immediate investigation and changes required",
		Action:      "Investigation and changes are required immediately",
		Urgency:     "Immediate action",
		Color:       "#ef4444",
	},
}

// ActionLevelFor maps a final RULA score to its action level band.
func ActionLevelFor(score int) ActionLevel {
	switch {
	case score <= 2:
		return actionLevels[0]
	case score <= 4:
		return actionLevels[1]
	case score <= 6:
		return actionLevels[2]
	default:
		return actionLevels[3]
	}
}
