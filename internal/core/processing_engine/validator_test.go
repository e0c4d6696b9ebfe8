package processing_engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedFile(t *testing.T) {
	v := NewFileValidator(DefaultProcessingConfig())

	data := []byte("%PDF-1.4 ...")
	info, err := v.Validate("report.pdf", data, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", info.Filename)
	assert.Equal(t, ".pdf", info.Extension)
	assert.Equal(t, int64(len(data)), info.Size)
	assert.Equal(t, "application/pdf", info.MimeType)
}

func TestValidateRejectsUnsupportedExtension(t *testing.T) {
	v := NewFileValidator(DefaultProcessingConfig())

	for _, name := range []string{"tool.exe", "archive.tar.gz", "noext", "script.sh"} {
		_, err := v.Validate(name, []byte("content"), "text/plain")
		assert.ErrorIs(t, err, ErrUnsupportedExtension, name)
	}
}

func TestValidateExtensionIsCaseInsensitive(t *testing.T) {
	v := NewFileValidator(DefaultProcessingConfig())

	info, err := v.Validate("REPORT.PDF", []byte("x"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", info.Extension)
}

func TestValidateRejectsMimeMismatch(t *testing.T) {
	v := NewFileValidator(DefaultProcessingConfig())

	_, err := v.Validate("report.pdf", []byte("x"), "text/html")
	assert.ErrorIs(t, err, ErrMimeMismatch)
}

func TestValidateMimeIsCaseInsensitive(t *testing.T) {
	v := NewFileValidator(DefaultProcessingConfig())

	_, err := v.Validate("report.pdf", []byte("x"), "Application/PDF")
	assert.NoError(t, err)
}

func TestValidateSkipsMimeCheckWithoutConfiguredSet(t *testing.T) {
	cfg := DefaultProcessingConfig()
	cfg.AllowedExtensions[".log"] = true // no MIME set configured

	v := NewFileValidator(cfg)
	_, err := v.Validate("server.log", []byte("boot"), "whatever/mime")
	assert.NoError(t, err)
}

func TestValidateRejectsOversizedFile(t *testing.T) {
	cfg := DefaultProcessingConfig()
	cfg.MaxFileSize = 16

	v := NewFileValidator(cfg)
	_, err := v.Validate("notes.txt", []byte(strings.Repeat("a", 17)), "text/plain")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// Exactly at the limit is fine.
	_, err = v.Validate("notes.txt", []byte(strings.Repeat("a", 16)), "text/plain")
	assert.NoError(t, err)
}

func TestValidateRejectsUnsafeFilenames(t *testing.T) {
	v := NewFileValidator(DefaultProcessingConfig())

	for _, name := range []string{"../secrets.txt", "dir/../../etc.txt", "/etc/passwd.txt"} {
		_, err := v.Validate(name, []byte("x"), "text/plain")
		assert.ErrorIs(t, err, ErrUnsafeFilename, name)
	}
}

func TestValidateChecksRunInFixedOrder(t *testing.T) {
	cfg := DefaultProcessingConfig()
	cfg.MaxFileSize = 4
	v := NewFileValidator(cfg)

	// Bad extension wins over oversized content and traversal.
	_, err := v.Validate("../huge.exe", []byte("toolarge"), "bogus/mime")
	assert.ErrorIs(t, err, ErrUnsupportedExtension)

	// MIME mismatch is reported before the size check.
	_, err = v.Validate("huge.txt", []byte("toolarge"), "bogus/mime")
	assert.ErrorIs(t, err, ErrMimeMismatch)

	// Size is checked before filename safety.
	_, err = v.Validate("../huge.txt", []byte("toolarge"), "text/plain")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
