package models

import (
	"errors"
	"os"
)

// FileInfo describes a validated incoming file. It is derived from the
// filename and byte content by the validator, never from claimed values,
// and lives only for the duration of one processing call.
type FileInfo struct {
	Filename  string `json:"filename"`
	Extension string `json:"extension"` // lowercased, includes the leading dot
	Size      int64  `json:"size"`      // always len(bytes)
	MimeType  string `json:"mime_type"`
}

// RawFile is the unit of work handed to the processor: a filename, the
// content (in memory or on disk), and the MIME type the uploader
// declared. One RawFile is owned by exactly one pipeline invocation.
type RawFile struct {
	Filename     string `json:"filename"`
	Bytes        []byte `json:"-"`
	Path         string `json:"-"`
	DeclaredMime string `json:"declared_mime"`
}

// Data returns the raw content, reading from Path when the hosting
// layer spooled the upload to disk instead of memory.
func (f *RawFile) Data() ([]byte, error) {
	if len(f.Bytes) > 0 {
		return f.Bytes, nil
	}
	if f.Path != "" {
		return os.ReadFile(f.Path)
	}
	return nil, errors.New("file content is not available as bytes or valid path")
}

// BatchEntry is one file's outcome inside a batch response.
type BatchEntry struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
