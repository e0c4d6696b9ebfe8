package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/markdave123-py/Condensa/internal/core/processing_engine"
	"github.com/markdave123-py/Condensa/internal/models"
)

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, _, userPrompt string) (string, error) {
	return "summary of: " + userPrompt, nil
}

func (echoGenerator) GenerateFromImage(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return "ocr text", nil
}

func newTestHandler() *DocumentHandler {
	processor := processing_engine.NewProcessor(echoGenerator{}, processing_engine.DefaultProcessingConfig(), zap.NewNop())
	return NewDocumentHandler(processor, zap.NewNop())
}

func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestProcessDocumentEndpoint(t *testing.T) {
	h := newTestHandler()

	body, contentType := multipartBody(t, "file", map[string]string{"notes.txt": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ProcessDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp processResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "notes.txt", resp.Filename)
	assert.Equal(t, "summary of: hello", resp.Content)
	assert.NotEmpty(t, resp.ID)
}

func TestProcessDocumentEndpointRejectsUnsupportedFile(t *testing.T) {
	h := newTestHandler()

	body, contentType := multipartBody(t, "file", map[string]string{"tool.exe": "MZ"})
	req := httptest.NewRequest(http.MethodPost, "/api/documents/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ProcessDocument(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file extension")
}

func TestProcessBatchEndpointIsolatesFailures(t *testing.T) {
	h := newTestHandler()

	body, contentType := multipartBody(t, "files", map[string]string{
		"a.txt":   "alpha",
		"bad.exe": "MZ",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/documents/batch", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ProcessBatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var entries []models.BatchEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)

	byName := map[string]string{}
	for _, e := range entries {
		byName[e.Filename] = e.Content
	}
	assert.Equal(t, "summary of: alpha", byName["a.txt"])
	assert.True(t, strings.HasPrefix(byName["bad.exe"], "Error processing bad.exe:"))
}

func TestSummarizeEndpoint(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/summarize",
		strings.NewReader(`{"content":"pasted text"}`))
	rec := httptest.NewRecorder()

	h.Summarize(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp summarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "summary of: pasted text", resp.Summary)
}

func TestSummarizeEndpointRejectsBadBody(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Summarize(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
