package images

import "time"

// Image represents an uploaded posture photo tied to a subject.
type Image struct {
	ID         string
	SubjectID  string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	ViewHint   string
	CreatedAt  time.Time
}
