package security

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// UploadKind selects the allow-list a file is checked against.
type UploadKind string

const (
	UploadResume UploadKind = "resume"
	UploadImage  UploadKind = "image"
)

var (
	ErrFileEmpty        = errors.New("file is empty")
	ErrFileTooLarge     = errors.New("file is too large")
	ErrFileExtension    = errors.New("file extension not allowed")
	ErrFileContentMatch = errors.New("file content does not match extension")
)

type uploadRule struct {
	maxSize int64
	// extension -> accepted sniffed MIME types
	types map[string][]string
}

var uploadRules = map[UploadKind]uploadRule{
	UploadResume: {
		maxSize: 5 << 20,
		types: map[string][]string{
			".pdf":  {"application/pdf"},
			".doc":  {"application/msword", "application/x-ole-storage"},
			".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
		},
	},
	UploadImage: {
		maxSize: 2 << 20,
		types: map[string][]string{
			".jpg":  {"image/jpeg"},
			".jpeg": {"image/jpeg"},
			".png":  {"image/png"},
			".gif":  {"image/gif"},
		},
	},
}

// MaxUploadSize is the size limit for kind.
func MaxUploadSize(kind UploadKind) int64 {
	return uploadRules[kind].maxSize
}

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Extension    string
	DetectedMIME string
}

// ValidateFile checks the extension against the allow-list for kind, the size
// limit, and that the sniffed content type agrees with the extension.
func ValidateFile(kind UploadKind, filename string, data []byte) (FileValidationResult, error) {
	rule, ok := uploadRules[kind]
	if !ok {
		return FileValidationResult{}, fmt.Errorf("unknown upload kind %q", kind)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	accepted, ok := rule.types[ext]
	if !ok {
		return FileValidationResult{Extension: ext}, fmt.Errorf("%w: %s (allowed: %s)", ErrFileExtension, ext, strings.Join(AllowedExtensions(kind), ", "))
	}
	if len(data) == 0 {
		return FileValidationResult{Extension: ext}, ErrFileEmpty
	}
	if int64(len(data)) > rule.maxSize {
		return FileValidationResult{Extension: ext}, fmt.Errorf("%w: limit is %d MB", ErrFileTooLarge, rule.maxSize>>20)
	}

	detected := mimetype.Detect(data)
	result := FileValidationResult{Extension: ext, DetectedMIME: detected.String()}
	for _, m := range accepted {
		if detected.Is(m) {
			return result, nil
		}
	}
	return result, ErrFileContentMatch
}

// AllowedExtensions lists the extensions accepted for kind, sorted.
func AllowedExtensions(kind UploadKind) []string {
	switch kind {
	case UploadResume:
		return []string{".doc", ".docx", ".pdf"}
	case UploadImage:
		return []string{".gif", ".jpeg", ".jpg", ".png"}
	}
	return nil
}

// IsImageExtension checks if the extension is an image type
func IsImageExtension(ext string) bool {
	_, ok := uploadRules[UploadImage].types[strings.ToLower(ext)]
	return ok
}
