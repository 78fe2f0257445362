package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/security/antivirus"
	"go-jobboard-backend/pkg/storage"
)

// UploadGate decides whether a user may upload another file.
type UploadGate interface {
	Allow(ctx context.Context, userID string) bool
}

type uploadService struct {
	gate    UploadGate
	scanner antivirus.Scanner
	store   storage.Store
	secLog  *security.SecurityLogger
}

// NewUploadService wires the upload pipeline: rate limit, content
// validation, malware scan, image resize, then storage.
func NewUploadService(gate UploadGate, scanner antivirus.Scanner, store storage.Store, secLog *security.SecurityLogger) domain.FileUploader {
	if scanner == nil {
		scanner = antivirus.NoOpScanner{}
	}
	return &uploadService{gate: gate, scanner: scanner, store: store, secLog: secLog}
}

func (s *uploadService) Upload(ctx context.Context, userID string, kind domain.UploadKind, folder, filename string, data []byte) (string, error) {
	if !s.gate.Allow(ctx, userID) {
		s.reject(ctx, userID, "upload rate limit exceeded")
		return "", apperror.New(http.StatusTooManyRequests, "Upload limit reached, please try again later", nil)
	}

	result, err := security.ValidateFile(security.UploadKind(kind), filename, data)
	if err != nil {
		s.reject(ctx, userID, err.Error())
		return "", validationError(kind, err)
	}

	scan := s.scanner.Scan(ctx, data)
	if scan.Err != nil {
		logger.Log.Error("Malware scan failed", "scanner", scan.Scanner, "error", scan.Err)
		return "", apperror.New(http.StatusServiceUnavailable, "File scanning is unavailable, please try again later", scan.Err)
	}
	if scan.Infected {
		s.reject(ctx, userID, "malware detected: "+scan.ThreatName)
		return "", apperror.BadRequest("File rejected by malware scan")
	}

	if kind == domain.UploadImage {
		resized, err := storage.ResizeImage(data, storage.MaxImageWidth)
		if err != nil {
			s.reject(ctx, userID, err.Error())
			return "", apperror.BadRequest("Image could not be processed")
		}
		data = resized
	}

	key := storage.ObjectKey(folder, userID, result.Extension)
	url, err := s.store.Save(ctx, key, result.DetectedMIME, data)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}

func (s *uploadService) reject(ctx context.Context, userID, reason string) {
	ip, _ := requestMeta(ctx)
	s.secLog.LogUploadRejected(ctx, userID, ip, reason)
}

func validationError(kind domain.UploadKind, err error) error {
	switch {
	case errors.Is(err, security.ErrFileEmpty):
		return apperror.BadRequest("Please upload a file")
	case errors.Is(err, security.ErrFileTooLarge):
		if kind == domain.UploadResume {
			return apperror.BadRequest("File size cannot exceed 5MB")
		}
		return apperror.BadRequest("Image size cannot exceed 2MB")
	case errors.Is(err, security.ErrFileExtension):
		if kind == domain.UploadResume {
			return apperror.BadRequest("Only PDF, DOC and DOCX files are allowed")
		}
		return apperror.BadRequest("Only JPG, JPEG, PNG and GIF images are allowed")
	default:
		return apperror.BadRequest("File content does not match its extension")
	}
}
