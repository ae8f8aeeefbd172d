package recommend

// Recommendation categories, ordered by urgency.
const (
	CategoryImmediate = "immediate"
	CategoryShortTerm = "short_term"
	CategoryLongTerm  = "long_term"
)

// Recommendation is a single prioritized corrective action plan for one body
// part or for the workstation as a whole.
type Recommendation struct {
	Priority            int      `json:"priority"`
	Category            string   `json:"category"`
	BodyPart            string   `json:"bodyPart"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Actions             []string `json:"actions"`
	StandardsReference  string   `json:"standardsReference,omitempty"`
	ExpectedImprovement string   `json:"expectedImprovement,omitempty"`
}

// Report is the complete prioritized action plan derived from one assessment.
type Report struct {
	OverallRiskStatement   string           `json:"overallRiskStatement"`
	ImmediateActions       []Recommendation `json:"immediateActions"`
	ShortTermActions       []Recommendation `json:"shortTermActions"`
	LongTermActions        []Recommendation `json:"longTermActions"`
	WorkstationAdjustments []Recommendation `json:"workstationAdjustments"`
	TaskRedesign           []Recommendation `json:"taskRedesign"`
	TrainingNeeds          []string         `json:"trainingNeeds"`
	MonitoringPlan         string           `json:"monitoringPlan"`
}
