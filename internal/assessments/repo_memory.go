package assessments

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Assessment // assessmentID -> assessment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Assessment),
	}
}

// Create stores an assessment.
func (r *MemoryRepo) Create(ctx context.Context, assessment Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[assessment.ID] = assessment
	return nil
}

// GetByID returns an assessment by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.data[assessmentID]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return a, nil
}

// ListBySubject returns a subject's assessments, newest first, honoring
// limit/offset.
func (r *MemoryRepo) ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Assessment, error) {
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
	var out []Assessment
	for _, a := range r.data {
		if a.SubjectID == subjectID {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) == 0 || offset >= len(out) {
		return []Assessment{}, nil
	}

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
