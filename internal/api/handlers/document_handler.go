package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/Condensa/internal/core/processing_engine"
	"github.com/markdave123-py/Condensa/internal/models"
)

const maxMultipartMemory = 32 << 20

type DocumentHandler struct {
	processor *processing_engine.Processor
	logger    *zap.Logger
}

func NewDocumentHandler(processor *processing_engine.Processor, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{processor: processor, logger: logger}
}

type processResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type summarizeRequest struct {
	Content string `json:"content"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// ProcessDocument handles a single multipart file upload and returns
// the summarized content. Pipeline errors map to 400/422.
func (h *DocumentHandler) ProcessDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "invalid file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	raw := &models.RawFile{Filename: header.Filename, Bytes: data, DeclaredMime: contentType}
	content, err := h.processor.ProcessRaw(r.Context(), raw)
	if err != nil {
		h.logger.Warn("document processing failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, processResponse{
		ID:       uuid.NewString(),
		Filename: header.Filename,
		Content:  content,
	})
}

// ProcessBatch accepts multiple multipart files and returns one entry
// per file; per-file failures arrive as inline error strings.
func (h *DocumentHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		http.Error(w, "no files provided", http.StatusBadRequest)
		return
	}

	files := make(map[string][]byte)
	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()
		if err != nil {
			http.Error(w, "invalid file: "+header.Filename, http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			http.Error(w, "failed to read file: "+header.Filename, http.StatusBadRequest)
			return
		}
		files[header.Filename] = data
	}

	results := h.processor.ProcessBatch(r.Context(), files)

	entries := make([]models.BatchEntry, 0, len(results))
	for filename, content := range results {
		entries = append(entries, models.BatchEntry{Filename: filename, Content: content})
	}
	writeJSON(w, entries)
}

// Summarize condenses caller-supplied text directly, bypassing the
// extraction stage.
func (h *DocumentHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, summarizeResponse{
		Summary: h.processor.SummarizeText(r.Context(), req.Content),
	})
}

func statusFor(err error) int {
	var extractionErr *processing_engine.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
