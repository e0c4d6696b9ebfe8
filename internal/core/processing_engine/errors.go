package processing_engine

import (
	"errors"
	"fmt"
)

// Validation failures. All are terminal for the request and surface to
// the caller unchanged; none is retryable.
var (
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrMimeMismatch         = errors.New("file content doesn't match extension")
	ErrFileTooLarge         = errors.New("file size exceeds limit")
	ErrUnsafeFilename       = errors.New("invalid filename: potential path traversal detected")

	// ErrUnsupportedFormat means the dispatch table has no strategy for
	// the extension. Unreachable when validation ran first.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ExtractionError wraps a parse or service failure inside one of the
// format strategies. The summarizer never produces one: its failures
// degrade to truncated original content instead.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to process %s: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
