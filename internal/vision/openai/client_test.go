package openai

import (
	"errors"
	"strings"
	"testing"

	"github.com/SAADSTACK/ergoassess/internal/vision"
)

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		model   string
		wantErr string
	}{
		{name: "valid", apiKey: "sk-test", model: "gpt-4o"},
		{name: "missing model", apiKey: "sk-test", model: " ", wantErr: "VISION_MODEL"},
		{name: "missing key", apiKey: "", model: "gpt-4o", wantErr: "OPENAI_API_KEY"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, tt.model)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("NewClient() error = %v", err)
				}
				if client == nil {
					t.Fatalf("NewClient() returned nil client")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("NewClient() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestParsePoseContent(t *testing.T) {
	t.Run("omitted angles keep neutral defaults", func(t *testing.T) {
		content := `{"poseDetected":true,"confidence":0.9,"angles":{"trunkFlexion":35}}`
		est, err := parsePoseContent(content)
		if err != nil {
			t.Fatalf("parsePoseContent() error = %v", err)
		}
		if est.Angles.TrunkFlexion != 35 {
			t.Errorf("trunkFlexion = %v, want 35", est.Angles.TrunkFlexion)
		}
		if est.Angles.LowerArmFlexion != 90 {
			t.Errorf("lowerArmFlexion = %v, want neutral 90", est.Angles.LowerArmFlexion)
		}
		if !est.Angles.LegSupported || !est.Angles.LegWeightEven {
			t.Errorf("leg support defaults lost: supported=%v even=%v",
				est.Angles.LegSupported, est.Angles.LegWeightEven)
		}
	})

	t.Run("provided angles override defaults", func(t *testing.T) {
		content := `{"poseDetected":true,"angles":{"lowerArmFlexion":120,"legSupported":false}}`
		est, err := parsePoseContent(content)
		if err != nil {
			t.Fatalf("parsePoseContent() error = %v", err)
		}
		if est.Angles.LowerArmFlexion != 120 {
			t.Errorf("lowerArmFlexion = %v, want 120", est.Angles.LowerArmFlexion)
		}
		if est.Angles.LegSupported {
			t.Errorf("legSupported = true, want false")
		}
	})

	t.Run("no pose detected", func(t *testing.T) {
		_, err := parsePoseContent(`{"poseDetected":false}`)
		if !errors.Is(err, vision.ErrNoPoseDetected) {
			t.Fatalf("error = %v, want ErrNoPoseDetected", err)
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		if _, err := parsePoseContent(`not json`); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}

func TestBuildUserText(t *testing.T) {
	if got := buildUserText(""); strings.Contains(got, "Camera view") {
		t.Errorf("empty view hint should not mention the camera view, got %q", got)
	}
	if got := buildUserText("side"); !strings.Contains(got, "Camera view: side.") {
		t.Errorf("view hint not included, got %q", got)
	}
}
