package processing_engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/markdave123-py/Condensa/internal/models"
)

// FileValidator runs the pre-extraction safety checks. It is a pure
// function over its inputs and the shared read-only config.
type FileValidator struct {
	cfg *ProcessingConfig
}

func NewFileValidator(cfg *ProcessingConfig) *FileValidator {
	return &FileValidator{cfg: cfg}
}

// Validate checks extension, declared MIME, size and filename safety,
// in that fixed order, returning on the first failure. The returned
// FileInfo always reflects the actual byte length, never a claimed size.
func (v *FileValidator) Validate(filename string, data []byte, declaredMime string) (*models.FileInfo, error) {
	info := &models.FileInfo{
		Filename:  filename,
		Extension: strings.ToLower(filepath.Ext(filename)),
		Size:      int64(len(data)),
		MimeType:  declaredMime,
	}

	if !v.cfg.AllowedExtensions[info.Extension] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, info.Extension)
	}

	if !v.cfg.mimeAllowed(info.Extension, declaredMime) {
		return nil, fmt.Errorf("%w: %s, expected %v, got %s",
			ErrMimeMismatch, info.Extension, v.cfg.AllowedMimeTypes[info.Extension], declaredMime)
	}

	if info.Size > v.cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size, v.cfg.MaxFileSize)
	}

	if strings.Contains(filename, "..") || strings.HasPrefix(filename, "/") {
		return nil, ErrUnsafeFilename
	}

	return info, nil
}
