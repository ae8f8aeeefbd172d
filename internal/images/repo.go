package images

import "context"

// ImagesRepo defines persistence operations for posture photos.
type ImagesRepo interface {
	Create(ctx context.Context, img Image) error
	GetByID(ctx context.Context, imageID string) (Image, error)
	ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Image, error)
}
