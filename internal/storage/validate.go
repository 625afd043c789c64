package storage

import (
	"carelink_backend/pkg/apperrors"
)

// UploadRules is the intake allow-list and size ceiling for uploaded
// documents. Applied before any storage call is made.
type UploadRules struct {
	MaxSize      int64
	AllowedTypes []string
}

// DefaultUploadRules: 10MB ceiling; JPEG, PNG, GIF and PDF.
func DefaultUploadRules() UploadRules {
	return UploadRules{
		MaxSize: 10 * 1024 * 1024,
		AllowedTypes: []string{
			"image/jpeg",
			"image/png",
			"image/gif",
			"application/pdf",
		},
	}
}

// Validate accepts or rejects a file by declared content type and size.
// There is no partial acceptance; the returned error carries the
// bilingual message shown to the applicant.
func (r UploadRules) Validate(size int64, contentType string) error {
	if size > r.MaxSize {
		return apperrors.ErrFileTooLarge
	}

	for _, allowed := range r.AllowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}
