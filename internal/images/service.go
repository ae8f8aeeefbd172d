package images

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/SAADSTACK/ergoassess/internal/shared/storage/object"
)

var allowedMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// Service contains business logic for posture photos.
type Service struct {
	Store object.ObjectStore
	Repo  ImagesRepo
}

// Upload sniffs and validates the image, saves it to object storage and
// records the metadata.
func (s *Service) Upload(ctx context.Context, subjectID, fileName, viewHint string, r io.Reader) (Image, error) {
	if fileName == "" {
		return Image{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Image{}, err
	}
	if len(data) == 0 {
		return Image{}, ErrInvalidInput
	}

	mimeType := http.DetectContentType(data)
	if !allowedMimeTypes[mimeType] {
		return Image{}, ErrUnsupportedType
	}

	namespace := subjectID
	if namespace == "" {
		namespace = "anonymous"
	}
	storageKey, size, _, err := s.Store.Save(ctx, namespace, fileName, bytes.NewReader(data))
	if err != nil {
		return Image{}, err
	}

	img := Image{
		ID:         uuid.NewString(),
		SubjectID:  subjectID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		ViewHint:   viewHint,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, img); err != nil {
		return Image{}, err
	}

	return img, nil
}

// Get returns an image by ID.
func (s *Service) Get(ctx context.Context, imageID string) (Image, error) {
	if imageID == "" {
		return Image{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, imageID)
}

// Bytes loads the stored image content.
func (s *Service) Bytes(ctx context.Context, img Image) ([]byte, error) {
	rc, err := s.Store.Open(ctx, img.StorageKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ListBySubject returns a subject's images, newest first.
func (s *Service) ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Image, error) {
	if subjectID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListBySubject(ctx, subjectID, limit, offset)
}
