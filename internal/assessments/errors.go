package assessments

import "errors"

var (
	// ErrNotFound is returned when an assessment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed assessment requests.
	ErrInvalidInput = errors.New("invalid input")
	// ErrVisionNotConfigured is returned when the image flow is used without
	// a pose-estimation provider.
	ErrVisionNotConfigured = errors.New("vision provider not configured")
)
