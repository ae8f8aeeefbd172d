package images

import "time"

// ImageResponse is the outward-facing representation of a posture photo.
type ImageResponse struct {
	ImageID    string    `json:"imageId"`
	SubjectID  string    `json:"subjectId,omitempty"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	ViewHint   string    `json:"viewHint,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResponse(img Image) ImageResponse {
	return ImageResponse{
		ImageID:    img.ID,
		SubjectID:  img.SubjectID,
		FileName:   img.FileName,
		MimeType:   img.MimeType,
		SizeBytes:  img.SizeBytes,
		ViewHint:   img.ViewHint,
		UploadedAt: img.CreatedAt,
	}
}
