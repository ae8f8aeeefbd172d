package images

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements ImagesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new image record.
func (r *PGRepo) Create(ctx context.Context, img Image) error {
	const query = `
INSERT INTO images (
    id,
    subject_id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    view_hint,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var subjectID sql.NullString
	if img.SubjectID != "" {
		subjectID = sql.NullString{String: img.SubjectID, Valid: true}
	}
	var viewHint sql.NullString
	if img.ViewHint != "" {
		viewHint = sql.NullString{String: img.ViewHint, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		img.ID,
		subjectID,
		img.FileName,
		img.MimeType,
		img.SizeBytes,
		img.StorageKey,
		viewHint,
		img.CreatedAt,
	)
	return err
}

// GetByID fetches an image by ID.
func (r *PGRepo) GetByID(ctx context.Context, imageID string) (Image, error) {
	const query = `
SELECT id, subject_id, file_name, mime_type, size_bytes, storage_key, view_hint, created_at
FROM images
WHERE id = $1
LIMIT 1`
	var img Image
	var subjectID sql.NullString
	var viewHint sql.NullString
	err := r.DB.QueryRowContext(ctx, query, imageID).Scan(
		&img.ID,
		&subjectID,
		&img.FileName,
		&img.MimeType,
		&img.SizeBytes,
		&img.StorageKey,
		&viewHint,
		&img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Image{}, ErrNotFound
		}
		return Image{}, err
	}
	if subjectID.Valid {
		img.SubjectID = subjectID.String
	}
	if viewHint.Valid {
		img.ViewHint = viewHint.String
	}
	return img, nil
}

// ListBySubject lists a subject's images ordered newest-first.
func (r *PGRepo) ListBySubject(ctx context.Context, subjectID string, limit, offset int) ([]Image, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, subject_id, file_name, mime_type, size_bytes, storage_key, view_hint, created_at
FROM images
WHERE subject_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, subjectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Image
	for rows.Next() {
		var img Image
		var subject sql.NullString
		var viewHint sql.NullString
		if err := rows.Scan(
			&img.ID,
			&subject,
			&img.FileName,
			&img.MimeType,
			&img.SizeBytes,
			&img.StorageKey,
			&viewHint,
			&img.CreatedAt,
		); err != nil {
			return nil, err
		}
		if subject.Valid {
			img.SubjectID = subject.String
		}
		if viewHint.Valid {
			img.ViewHint = viewHint.String
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

var _ ImagesRepo = (*PGRepo)(nil)
