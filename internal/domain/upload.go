package domain

import "context"

type UploadKind string

const (
	UploadResume UploadKind = "resume"
	UploadImage  UploadKind = "image"
)

// FileUploader validates an uploaded file and stores it, returning its URL.
type FileUploader interface {
	Upload(ctx context.Context, userID string, kind UploadKind, folder, filename string, data []byte) (string, error)
}
