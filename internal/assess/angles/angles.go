// Package angles defines the normalized joint-angle contract consumed by the
// RULA and REBA scoring engines. Values are degrees; boolean fields are
// qualitative postural flags reported by the vision collaborator.
package angles

// AngleSet is a flat record of named joint measurements for one observed
// posture. It carries no logic; defaults for absent fields come from Neutral.
type AngleSet struct {
	NeckFlexion   float64 `json:"neckFlexion"`
	NeckExtension float64 `json:"neckExtension"`
	NeckTwist     float64 `json:"neckTwist"`
	NeckSideBend  float64 `json:"neckSideBend"`

	TrunkFlexion   float64 `json:"trunkFlexion"`
	TrunkExtension float64 `json:"trunkExtension"`
	TrunkTwist     float64 `json:"trunkTwist"`
	TrunkSideBend  float64 `json:"trunkSideBend"`

	// UpperArmFlexion is signed: negative values are extension behind the body.
	UpperArmFlexion   float64 `json:"upperArmFlexion"`
	UpperArmAbduction float64 `json:"upperArmAbduction"`
	ShoulderRaised    bool    `json:"shoulderRaised"`
	ArmSupported      bool    `json:"armSupported"`

	LowerArmFlexion       float64 `json:"lowerArmFlexion"`
	LowerArmAcrossMidline bool    `json:"lowerArmAcrossMidline"`

	WristFlexion   float64 `json:"wristFlexion"`
	WristExtension float64 `json:"wristExtension"`
	WristDeviation float64 `json:"wristDeviation"`
	WristTwist     bool    `json:"wristTwist"`

	LegFlexion    float64 `json:"legFlexion"`
	LegSupported  bool    `json:"legSupported"`
	LegWeightEven bool    `json:"legWeightEven"`
}

// Neutral returns the biomechanically neutral AngleSet used to default absent
// fields: every angle at 0 degrees except the elbow, which rests at 90, with
// legs supported and weight evenly distributed.
func Neutral() AngleSet {
	return AngleSet{
		LowerArmFlexion: 90,
		LegSupported:    true,
		LegWeightEven:   true,
	}
}
