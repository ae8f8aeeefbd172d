package images

import "errors"

var (
	// ErrNotFound is returned when an image does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed upload requests.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType is returned for non-image uploads.
	ErrUnsupportedType = errors.New("unsupported image type")
)
