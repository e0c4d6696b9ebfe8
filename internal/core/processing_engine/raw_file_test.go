package processing_engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdave123-py/Condensa/internal/models"
)

func TestProcessRawInMemoryBytes(t *testing.T) {
	p := newTestProcessor(&fakeGenerator{})

	raw := &models.RawFile{
		Filename:     "notes.txt",
		Bytes:        []byte("in memory"),
		DeclaredMime: "text/plain",
	}
	result, err := p.ProcessRaw(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "summary of: in memory", result)
}

func TestProcessRawReadsFromDiskPath(t *testing.T) {
	p := newTestProcessor(&fakeGenerator{})

	path := filepath.Join(t.TempDir(), "spooled.txt")
	require.NoError(t, os.WriteFile(path, []byte("on disk"), 0o600))

	raw := &models.RawFile{
		Filename:     "spooled.txt",
		Path:         path,
		DeclaredMime: "text/plain",
	}
	result, err := p.ProcessRaw(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "summary of: on disk", result)
}

func TestProcessRawWithoutContent(t *testing.T) {
	p := newTestProcessor(&fakeGenerator{})

	_, err := p.ProcessRaw(context.Background(), &models.RawFile{Filename: "ghost.txt"})
	assert.Error(t, err)

	_, err = p.ProcessRaw(context.Background(), nil)
	assert.Error(t, err)
}
