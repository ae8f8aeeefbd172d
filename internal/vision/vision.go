package vision

import (
	"context"
	"errors"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
)

// Estimator abstracts pose-estimation providers that derive joint angles
// from a worker photo.
type Estimator interface {
	EstimateAngles(ctx context.Context, input EstimateInput) (Estimate, error)
}

// EstimateInput captures the inputs needed for pose estimation.
type EstimateInput struct {
	Image       []byte
	ContentType string
	// ViewHint tells the provider which side of the worker the camera saw,
	// e.g. "side" or "front". Empty means unknown.
	ViewHint string
}

// Estimate is the provider's reading of a single posture photo.
type Estimate struct {
	Angles     angles.AngleSet
	Confidence float64
	Notes      string
}

// ErrNoPoseDetected is returned when the provider cannot find a person in
// the image.
var ErrNoPoseDetected = errors.New("no pose detected in image")

// ErrNotImplemented is returned by the placeholder estimator. Handlers treat
// it like a missing provider and answer with the vision-unavailable error.
var ErrNotImplemented = errors.New("pose estimation not implemented")

// PlaceholderEstimator is a stub implementation until provider wiring is added.
type PlaceholderEstimator struct{}

// EstimateAngles returns ErrNotImplemented.
func (PlaceholderEstimator) EstimateAngles(ctx context.Context, input EstimateInput) (Estimate, error) {
	_ = ctx
	_ = input
	return Estimate{}, ErrNotImplemented
}
