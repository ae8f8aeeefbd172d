package assessments

import (
	"fmt"
	"strings"
	"time"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
	"github.com/SAADSTACK/ergoassess/internal/assess/justify"
	"github.com/SAADSTACK/ergoassess/internal/assess/reba"
	"github.com/SAADSTACK/ergoassess/internal/assess/recommend"
	"github.com/SAADSTACK/ergoassess/internal/assess/rula"
)

// AngleInput carries the measured joint angles of a request. Every field is
// optional; omitted fields keep their neutral-posture value.
type AngleInput struct {
	NeckFlexion   *float64 `json:"neckFlexion"`
	NeckExtension *float64 `json:"neckExtension"`
	NeckTwist     *float64 `json:"neckTwist"`
	NeckSideBend  *float64 `json:"neckSideBend"`

	TrunkFlexion   *float64 `json:"trunkFlexion"`
	TrunkExtension *float64 `json:"trunkExtension"`
	TrunkTwist     *float64 `json:"trunkTwist"`
	TrunkSideBend  *float64 `json:"trunkSideBend"`

	UpperArmFlexion   *float64 `json:"upperArmFlexion"`
	UpperArmAbduction *float64 `json:"upperArmAbduction"`
	ShoulderRaised    *bool    `json:"shoulderRaised"`
	ArmSupported      *bool    `json:"armSupported"`

	LowerArmFlexion       *float64 `json:"lowerArmFlexion"`
	LowerArmAcrossMidline *bool    `json:"lowerArmAcrossMidline"`

	WristFlexion   *float64 `json:"wristFlexion"`
	WristExtension *float64 `json:"wristExtension"`
	WristDeviation *float64 `json:"wristDeviation"`
	WristTwist     *bool    `json:"wristTwist"`

	LegFlexion    *float64 `json:"legFlexion"`
	LegSupported  *bool    `json:"legSupported"`
	LegWeightEven *bool    `json:"legWeightEven"`
}

// resolve merges the input into a neutral angle set.
func (in AngleInput) resolve() angles.AngleSet {
	a := angles.Neutral()

	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setFloat(&a.NeckFlexion, in.NeckFlexion)
	setFloat(&a.NeckExtension, in.NeckExtension)
	setFloat(&a.NeckTwist, in.NeckTwist)
	setFloat(&a.NeckSideBend, in.NeckSideBend)
	setFloat(&a.TrunkFlexion, in.TrunkFlexion)
	setFloat(&a.TrunkExtension, in.TrunkExtension)
	setFloat(&a.TrunkTwist, in.TrunkTwist)
	setFloat(&a.TrunkSideBend, in.TrunkSideBend)
	setFloat(&a.UpperArmFlexion, in.UpperArmFlexion)
	setFloat(&a.UpperArmAbduction, in.UpperArmAbduction)
	setBool(&a.ShoulderRaised, in.ShoulderRaised)
	setBool(&a.ArmSupported, in.ArmSupported)
	setFloat(&a.LowerArmFlexion, in.LowerArmFlexion)
	setBool(&a.LowerArmAcrossMidline, in.LowerArmAcrossMidline)
	setFloat(&a.WristFlexion, in.WristFlexion)
	setFloat(&a.WristExtension, in.WristExtension)
	setFloat(&a.WristDeviation, in.WristDeviation)
	setBool(&a.WristTwist, in.WristTwist)
	setFloat(&a.LegFlexion, in.LegFlexion)
	setBool(&a.LegSupported, in.LegSupported)
	setBool(&a.LegWeightEven, in.LegWeightEven)

	return a
}

// validate rejects angle values outside the anatomically meaningful range.
func (in AngleInput) validate() error {
	fields := map[string]*float64{
		"neckFlexion":       in.NeckFlexion,
		"neckExtension":     in.NeckExtension,
		"neckTwist":         in.NeckTwist,
		"neckSideBend":      in.NeckSideBend,
		"trunkFlexion":      in.TrunkFlexion,
		"trunkExtension":    in.TrunkExtension,
		"trunkTwist":        in.TrunkTwist,
		"trunkSideBend":     in.TrunkSideBend,
		"upperArmFlexion":   in.UpperArmFlexion,
		"upperArmAbduction": in.UpperArmAbduction,
		"lowerArmFlexion":   in.LowerArmFlexion,
		"wristFlexion":      in.WristFlexion,
		"wristExtension":    in.WristExtension,
		"wristDeviation":    in.WristDeviation,
		"legFlexion":        in.LegFlexion,
	}
	for name, value := range fields {
		if value == nil {
			continue
		}
		if *value < -180 || *value > 180 {
			return fmt.Errorf("%w: %s must be between -180 and 180 degrees", ErrInvalidInput, name)
		}
	}
	return nil
}

// OptionsInput carries the optional task context of a request. Omitted
// fields keep the engine defaults.
type OptionsInput struct {
	LoadKg         *float64 `json:"loadKg"`
	Coupling       *string  `json:"coupling"`
	IsStatic       *bool    `json:"isStatic"`
	IsRepetitive   *bool    `json:"isRepetitive"`
	HasRapidChange *bool    `json:"hasRapidChange"`
	IsShockLoad    *bool    `json:"isShockLoad"`
}

func (in *OptionsInput) validate() error {
	if in == nil {
		return nil
	}
	if in.LoadKg != nil && *in.LoadKg < 0 {
		return fmt.Errorf("%w: loadKg must not be negative", ErrInvalidInput)
	}
	if in.Coupling != nil {
		switch reba.Coupling(strings.ToLower(*in.Coupling)) {
		case reba.CouplingGood, reba.CouplingFair, reba.CouplingPoor, reba.CouplingUnacceptable, "":
		default:
			return fmt.Errorf("%w: coupling must be good, fair, poor or unacceptable", ErrInvalidInput)
		}
	}
	return nil
}

// resolve merges the input into the per-engine defaults.
func (in *OptionsInput) resolve() (rula.Options, reba.Options) {
	rulaOpts := rula.DefaultOptions()
	rebaOpts := reba.DefaultOptions()
	if in == nil {
		return rulaOpts, rebaOpts
	}

	if in.LoadKg != nil {
		rulaOpts.LoadKg = *in.LoadKg
		rebaOpts.LoadKg = *in.LoadKg
	}
	if in.Coupling != nil && *in.Coupling != "" {
		rebaOpts.Coupling = reba.Coupling(*in.Coupling)
	}
	if in.IsStatic != nil {
		rulaOpts.IsStatic = *in.IsStatic
		rebaOpts.IsStatic = *in.IsStatic
	}
	if in.IsRepetitive != nil {
		rulaOpts.IsRepetitive = *in.IsRepetitive
		rebaOpts.IsRepeated = *in.IsRepetitive
	}
	if in.HasRapidChange != nil {
		rebaOpts.HasRapidChange = *in.HasRapidChange
	}
	if in.IsShockLoad != nil {
		rulaOpts.IsShockLoad = *in.IsShockLoad
		rebaOpts.IsShockLoad = *in.IsShockLoad
	}
	return rulaOpts, rebaOpts
}

// CreateRequest is the body for direct angle submissions.
type CreateRequest struct {
	SubjectID string        `json:"subjectId"`
	Angles    AngleInput    `json:"angles"`
	Options   *OptionsInput `json:"options"`
	Notes     string        `json:"notes"`
}

// AssessImageRequest is the body for assessing an uploaded photo.
type AssessImageRequest struct {
	Options *OptionsInput `json:"options"`
	Notes   string        `json:"notes"`
}

// RULASection is the rula portion of a response: the engine result with the
// per-component justification of how each body region earned its score.
type RULASection struct {
	rula.Result
	Justification justify.Set `json:"justification"`
}

// REBASection is the reba portion of a response.
type REBASection struct {
	reba.Result
	Justification justify.Set `json:"justification"`
}

// AssessmentResponse is the outward-facing representation of an assessment.
type AssessmentResponse struct {
	AssessmentID    string           `json:"assessmentId"`
	SubjectID       string           `json:"subjectId,omitempty"`
	ImageID         string           `json:"imageId,omitempty"`
	Source          string           `json:"source"`
	Angles          angles.AngleSet  `json:"angles"`
	RULA            RULASection      `json:"rula"`
	REBA            REBASection      `json:"reba"`
	Recommendations recommend.Report `json:"recommendations"`
	Confidence      float64          `json:"confidence,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func toResponse(a Assessment) AssessmentResponse {
	return AssessmentResponse{
		AssessmentID:    a.ID,
		SubjectID:       a.SubjectID,
		ImageID:         a.ImageID,
		Source:          a.Source,
		Angles:          a.Angles,
		RULA:            RULASection{Result: a.RULA, Justification: justify.RULA(a.RULA)},
		REBA:            REBASection{Result: a.REBA, Justification: justify.REBA(a.REBA)},
		Recommendations: a.Recommendations,
		Confidence:      a.Confidence,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}

// ListItemResponse is the compact representation used by list endpoints.
type ListItemResponse struct {
	AssessmentID string    `json:"assessmentId"`
	SubjectID    string    `json:"subjectId,omitempty"`
	ImageID      string    `json:"imageId,omitempty"`
	Source       string    `json:"source"`
	RULAScore    int       `json:"rulaScore"`
	REBAScore    int       `json:"rebaScore"`
	ActionLevel  int       `json:"actionLevel"`
	RiskLevel    string    `json:"riskLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toListItem(a Assessment) ListItemResponse {
	return ListItemResponse{
		AssessmentID: a.ID,
		SubjectID:    a.SubjectID,
		ImageID:      a.ImageID,
		Source:       a.Source,
		RULAScore:    a.RULA.FinalScore,
		REBAScore:    a.REBA.FinalScore,
		ActionLevel:  a.RULA.ActionLevel.Level,
		RiskLevel:    a.REBA.RiskLevel.Level,
		CreatedAt:    a.CreatedAt,
	}
}
