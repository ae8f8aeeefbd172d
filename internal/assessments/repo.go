package assessments

import "context"

// Repo defines persistence operations for assessments.
type Repo interface {
	Create(ctx context.Context, assessment Assessment) error
	GetByID(ctx context.Context, assessmentID string) (Assessment, error)
	ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Assessment, error)
}
