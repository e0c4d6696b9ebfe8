package processing_engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/markdave123-py/Condensa/internal/core"
	"github.com/markdave123-py/Condensa/internal/models"
)

// extractFunc is one format strategy: raw bytes in, summarized text out.
type extractFunc func(ctx context.Context, filename string, data []byte, mimeType string) (string, error)

// Processor composes validation, format dispatch and summarization.
// It holds no per-request state; one Processor serves all requests.
type Processor struct {
	cfg        *ProcessingConfig
	validator  *FileValidator
	summarizer *Summarizer
	generator  core.TextGenerator
	extractors map[string]extractFunc
	logger     *zap.Logger
}

func NewProcessor(generator core.TextGenerator, cfg *ProcessingConfig, logger *zap.Logger) *Processor {
	if cfg == nil {
		cfg = DefaultProcessingConfig()
	}
	p := &Processor{
		cfg:        cfg,
		validator:  NewFileValidator(cfg),
		summarizer: NewSummarizer(generator, cfg, logger),
		generator:  generator,
		logger:     logger,
	}
	p.extractors = map[string]extractFunc{
		".pdf":  p.extractPDF,
		".docx": p.extractDOCX,
		".txt":  p.extractTXT,
		".jpg":  p.extractImage,
		".jpeg": p.extractImage,
		".png":  p.extractImage,
		".rtf":  p.extractOffice,
		".odt":  p.extractOffice,
	}
	return p
}

// Process runs the full pipeline for one file: validate, pick the
// extraction strategy by extension, extract and summarize. The first
// failure from any stage is returned unchanged; there are no retries.
func (p *Processor) Process(ctx context.Context, filename string, data []byte, mimeType string) (string, error) {
	if filename == "" || len(data) == 0 {
		return "", fmt.Errorf("filename and file bytes are required")
	}

	info, err := p.validator.Validate(filename, data, mimeType)
	if err != nil {
		return "", err
	}

	p.logger.Info("processing file",
		zap.String("filename", info.Filename),
		zap.Int64("size", info.Size),
		zap.String("mime", info.MimeType))

	extract, ok := p.extractors[info.Extension]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, info.Extension)
	}

	result, err := extract(ctx, filename, data, mimeType)
	if err != nil {
		p.logger.Error("failed to process file", zap.String("filename", filename), zap.Error(err))
		return "", err
	}

	p.logger.Info("successfully processed file", zap.String("filename", filename))
	return result, nil
}

// ProcessRaw resolves a RawFile's content and runs the full pipeline
// on it.
func (p *Processor) ProcessRaw(ctx context.Context, f *models.RawFile) (string, error) {
	if f == nil {
		return "", fmt.Errorf("file is nil")
	}
	data, err := f.Data()
	if err != nil {
		return "", err
	}
	return p.Process(ctx, f.Filename, data, f.DeclaredMime)
}

// ProcessBatch runs the pipeline for every file concurrently. Each
// failure is caught at this boundary and rendered as an error string
// under that file's key, so the result always holds exactly one entry
// per input and the call itself never fails. The declared MIME for each
// file is the canonical type for its extension.
func (p *Processor) ProcessBatch(ctx context.Context, files map[string][]byte) map[string]string {
	results := make(map[string]string, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for filename, data := range files {
		g.Go(func() error {
			content, err := p.Process(gctx, filename, data, p.cfg.CanonicalMime(extensionOf(filename)))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[filename] = fmt.Sprintf("Error processing %s: %v", filename, err)
			} else {
				results[filename] = content
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
	return results
}

// SummarizeText summarizes already-extracted content directly, skipping
// validation and extraction. Used by the hosting layer's summary command.
func (p *Processor) SummarizeText(ctx context.Context, content string) string {
	return p.summarizer.Summarize(ctx, content, "Document", "document")
}

func extensionOf(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
