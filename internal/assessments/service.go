package assessments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SAADSTACK/ergoassess/internal/assess/reba"
	"github.com/SAADSTACK/ergoassess/internal/assess/recommend"
	"github.com/SAADSTACK/ergoassess/internal/assess/rula"
	"github.com/SAADSTACK/ergoassess/internal/images"
	"github.com/SAADSTACK/ergoassess/internal/shared/metrics"
	"github.com/SAADSTACK/ergoassess/internal/shared/telemetry"
	"github.com/SAADSTACK/ergoassess/internal/vision"
)

// Service contains business logic for assessments.
type Service struct {
	Repo   Repo
	Images *images.Service
	Vision vision.Estimator
}

// CreateFromAngles scores a directly submitted angle set and records the
// assessment.
func (s *Service) CreateFromAngles(ctx context.Context, req CreateRequest) (Assessment, error) {
	if err := req.Angles.validate(); err != nil {
		return Assessment{}, err
	}
	if err := req.Options.validate(); err != nil {
		return Assessment{}, err
	}

	a := req.Angles.resolve()
	rulaOpts, rebaOpts := req.Options.resolve()

	assessment := Assessment{
		ID:          uuid.NewString(),
		SubjectID:   req.SubjectID,
		Source:      SourceAngles,
		Angles:      a,
		RULAOptions: rulaOpts,
		REBAOptions: rebaOpts,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}

	return s.score(ctx, assessment)
}

// CreateFromImage runs pose estimation on a stored photo, then scores the
// derived angles and records the assessment.
func (s *Service) CreateFromImage(ctx context.Context, imageID string, req AssessImageRequest) (Assessment, error) {
	if s.Vision == nil {
		return Assessment{}, ErrVisionNotConfigured
	}
	if err := req.Options.validate(); err != nil {
		return Assessment{}, err
	}

	img, err := s.Images.Get(ctx, imageID)
	if err != nil {
		return Assessment{}, err
	}
	data, err := s.Images.Bytes(ctx, img)
	if err != nil {
		return Assessment{}, err
	}

	estimate, err := s.Vision.EstimateAngles(ctx, vision.EstimateInput{
		Image:       data,
		ContentType: img.MimeType,
		ViewHint:    img.ViewHint,
	})
	if err != nil {
		return Assessment{}, err
	}

	rulaOpts, rebaOpts := req.Options.resolve()

	assessment := Assessment{
		ID:          uuid.NewString(),
		SubjectID:   img.SubjectID,
		ImageID:     img.ID,
		Source:      SourceImage,
		Angles:      estimate.Angles,
		RULAOptions: rulaOpts,
		REBAOptions: rebaOpts,
		Confidence:  estimate.Confidence,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if assessment.Notes == "" {
		assessment.Notes = estimate.Notes
	}

	return s.score(ctx, assessment)
}

func (s *Service) score(ctx context.Context, assessment Assessment) (Assessment, error) {
	metrics.IncAssessmentStarted()
	started := time.Now()

	assessment.RULA = rula.New(assessment.RULAOptions).Calculate(assessment.Angles)
	assessment.REBA = reba.New(assessment.REBAOptions).Calculate(assessment.Angles)
	assessment.Recommendations = recommend.Generate(assessment.Angles, assessment.RULA, assessment.REBA)

	if err := s.Repo.Create(ctx, assessment); err != nil {
		metrics.IncAssessmentFailed()
		telemetry.Error("assessment.failed", map[string]any{
			"assessment_id": assessment.ID,
			"source":        assessment.Source,
			"error":         err.Error(),
		})
		return Assessment{}, err
	}

	metrics.IncAssessmentCompleted()
	metrics.ObserveAssessmentDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("assessment.completed", map[string]any{
		"assessment_id": assessment.ID,
		"subject_id":    assessment.SubjectID,
		"source":        assessment.Source,
		"rula_score":    assessment.RULA.FinalScore,
		"action_level":  assessment.RULA.ActionLevel.Level,
		"reba_score":    assessment.REBA.FinalScore,
		"risk_level":    assessment.REBA.RiskLevel.Level,
	})

	return assessment, nil
}

// Get returns an assessment by ID.
func (s *Service) Get(ctx context.Context, assessmentID string) (Assessment, error) {
	if assessmentID == "" {
		return Assessment{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, assessmentID)
}

// ListBySubject returns a subject's assessments, newest first.
func (s *Service) ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Assessment, error) {
	if subjectID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListBySubject(ctx, subjectID, limit, offset)
}
