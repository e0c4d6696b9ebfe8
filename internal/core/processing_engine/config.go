package processing_engine

import "strings"

// ProcessingConfig holds the static limits and model settings shared by
// every pipeline stage. Construct it once and treat it as read-only;
// concurrent batch tasks all read from the same instance.
type ProcessingConfig struct {
	AllowedExtensions map[string]bool
	// AllowedMimeTypes maps an extension to the set of MIME types the
	// uploader may declare for it. An extension with no entry (or an
	// empty set) skips the MIME check entirely.
	AllowedMimeTypes map[string][]string
	MaxFileSize      int64
	TextExtractLimit int
	Model            string
	Temperature      float32
}

// DefaultProcessingConfig returns the stock limits: 10 MiB uploads,
// 8000 characters of extracted text fed to the model.
func DefaultProcessingConfig() *ProcessingConfig {
	return &ProcessingConfig{
		AllowedExtensions: map[string]bool{
			".pdf":  true,
			".docx": true,
			".txt":  true,
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".rtf":  true,
			".odt":  true,
		},
		AllowedMimeTypes: map[string][]string{
			".pdf":  {"application/pdf"},
			".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
			".txt":  {"text/plain", "text/plain; charset=utf-8"},
			".jpg":  {"image/jpeg"},
			".jpeg": {"image/jpeg"},
			".png":  {"image/png"},
			".rtf":  {"application/rtf", "text/rtf"},
			".odt":  {"application/vnd.oasis.opendocument.text"},
		},
		MaxFileSize:      10 << 20,
		TextExtractLimit: 8000,
		Model:            "gemini-1.5-flash",
		Temperature:      0.3,
	}
}

// mimeAllowed reports whether the declared MIME type is acceptable for
// the extension. Both lookups are case-insensitive.
func (c *ProcessingConfig) mimeAllowed(extension, declared string) bool {
	expected := c.AllowedMimeTypes[strings.ToLower(extension)]
	if len(expected) == 0 {
		// No expectation configured: trust the declared type.
		return true
	}
	declared = strings.ToLower(declared)
	for _, m := range expected {
		if strings.ToLower(m) == declared {
			return true
		}
	}
	return false
}

// CanonicalMime returns the preferred MIME type for an extension, used
// when the caller supplies bytes without a declared type (batch mode).
func (c *ProcessingConfig) CanonicalMime(extension string) string {
	if expected := c.AllowedMimeTypes[strings.ToLower(extension)]; len(expected) > 0 {
		return expected[0]
	}
	return "application/octet-stream"
}
