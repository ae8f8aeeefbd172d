package angles

import (
	"encoding/json"
	"testing"
)

func TestNeutralDefaults(t *testing.T) {
	n := Neutral()

	if n.LowerArmFlexion != 90 {
		t.Errorf("neutral lower arm flexion = %v, want 90", n.LowerArmFlexion)
	}
	if !n.LegSupported || !n.LegWeightEven {
		t.Errorf("neutral legs should be supported with even weight")
	}
	if n.NeckFlexion != 0 || n.TrunkFlexion != 0 || n.UpperArmFlexion != 0 {
		t.Errorf("neutral joint angles should be zero")
	}
}

func TestJSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(Neutral())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, name := range []string{"neckFlexion", "trunkFlexion", "upperArmFlexion", "lowerArmFlexion", "wristDeviation", "legWeightEven"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("missing JSON field %q", name)
		}
	}
}
