package images

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ImagesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Image // imageID -> image
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Image),
	}
}

// Create stores an image record.
func (r *MemoryRepo) Create(ctx context.Context, img Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[img.ID] = img
	return nil
}

// GetByID returns an image by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, imageID string) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.data[imageID]
	if !ok {
		return Image{}, ErrNotFound
	}
	return img, nil
}

// ListBySubject returns a subject's images, newest first, honoring limit/offset.
func (r *MemoryRepo) ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var imgs []Image
	for _, img := range r.data {
		if img.SubjectID == subjectID {
			imgs = append(imgs, img)
		}
	}
	r.mu.RUnlock()

	sort.Slice(imgs, func(i, j int) bool {
		return imgs[i].CreatedAt.After(imgs[j].CreatedAt)
	})

	if len(imgs) == 0 || offset >= len(imgs) {
		return []Image{}, nil
	}

	end := len(imgs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return imgs[offset:end], nil
}

var _ ImagesRepo = (*MemoryRepo)(nil)
