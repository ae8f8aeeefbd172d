package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const assessmentColumns = `id, subject_id, image_id, source, angles, rula_options, reba_options,
       rula_result, reba_result, recommendations, confidence, notes, created_at`

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, a Assessment) error {
	const query = `
INSERT INTO assessments (
    id, subject_id, image_id, source, angles, rula_options, reba_options,
    rula_result, reba_result, recommendations, confidence, notes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	anglesPayload, err := marshalJSONB(a.Angles)
	if err != nil {
		return fmt.Errorf("marshal angles: %w", err)
	}
	rulaOptsPayload, err := marshalJSONB(a.RULAOptions)
	if err != nil {
		return fmt.Errorf("marshal rula options: %w", err)
	}
	rebaOptsPayload, err := marshalJSONB(a.REBAOptions)
	if err != nil {
		return fmt.Errorf("marshal reba options: %w", err)
	}
	rulaPayload, err := marshalJSONB(a.RULA)
	if err != nil {
		return fmt.Errorf("marshal rula result: %w", err)
	}
	rebaPayload, err := marshalJSONB(a.REBA)
	if err != nil {
		return fmt.Errorf("marshal reba result: %w", err)
	}
	recsPayload, err := marshalJSONB(a.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	var subjectID sql.NullString
	if a.SubjectID != "" {
		subjectID = sql.NullString{String: a.SubjectID, Valid: true}
	}
	var imageID sql.NullString
	if a.ImageID != "" {
		imageID = sql.NullString{String: a.ImageID, Valid: true}
	}
	var notes sql.NullString
	if a.Notes != "" {
		notes = sql.NullString{String: a.Notes, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		a.ID,
		subjectID,
		imageID,
		a.Source,
		anglesPayload,
		rulaOptsPayload,
		rebaOptsPayload,
		rulaPayload,
		rebaPayload,
		recsPayload,
		a.Confidence,
		notes,
		a.CreatedAt,
	)
	return err
}

// GetByID returns an assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	query := `
SELECT ` + assessmentColumns + `
FROM assessments
WHERE id = $1
LIMIT 1`
	a, err := scanAssessment(r.DB.QueryRowContext(ctx, query, assessmentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	return a, nil
}

// ListBySubject lists a subject's assessments ordered newest-first.
func (r *PGRepo) ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + assessmentColumns + `
FROM assessments
WHERE subject_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, subjectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var subjectID sql.NullString
	var imageID sql.NullString
	var anglesRaw []byte
	var rulaOptsRaw []byte
	var rebaOptsRaw []byte
	var rulaRaw []byte
	var rebaRaw []byte
	var recsRaw []byte
	var notes sql.NullString

	if err := row.Scan(
		&a.ID,
		&subjectID,
		&imageID,
		&a.Source,
		&anglesRaw,
		&rulaOptsRaw,
		&rebaOptsRaw,
		&rulaRaw,
		&rebaRaw,
		&recsRaw,
		&a.Confidence,
		&notes,
		&a.CreatedAt,
	); err != nil {
		return Assessment{}, err
	}

	if subjectID.Valid {
		a.SubjectID = subjectID.String
	}
	if imageID.Valid {
		a.ImageID = imageID.String
	}
	if notes.Valid {
		a.Notes = notes.String
	}

	decodes := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"angles", anglesRaw, &a.Angles},
		{"rula_options", rulaOptsRaw, &a.RULAOptions},
		{"reba_options", rebaOptsRaw, &a.REBAOptions},
		{"rula_result", rulaRaw, &a.RULA},
		{"reba_result", rebaRaw, &a.REBA},
		{"recommendations", recsRaw, &a.Recommendations},
	}
	for _, d := range decodes {
		if len(d.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(d.raw, d.dst); err != nil {
			return Assessment{}, fmt.Errorf("decode %s: %w", d.name, err)
		}
	}

	return a, nil
}

func marshalJSONB(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

var _ Repo = (*PGRepo)(nil)
