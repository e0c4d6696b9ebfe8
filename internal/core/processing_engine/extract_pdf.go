package processing_engine

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// extractPDF pulls text out of every page, prefixing each non-empty
// page with a 1-indexed marker, then truncates and summarizes. No
// partial result is returned when the stream cannot be parsed.
func (p *Processor) extractPDF(ctx context.Context, filename string, data []byte, mimeType string) (text string, err error) {
	// The underlying reader panics on some malformed cross-reference
	// tables; convert that to a regular extraction failure.
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{Format: "PDF", Err: fmt.Errorf("parse: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "PDF", Err: err}
	}

	pageCount := reader.NumPage()
	p.logger.Info("processing PDF", zap.String("filename", filename), zap.Int("pages", pageCount))

	var b strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: "PDF", Err: fmt.Errorf("page %d: %w", i, err)}
		}
		if pageText == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d ---\n%s", i, pageText)
	}

	extracted := truncate(b.String(), p.cfg.TextExtractLimit)
	return p.summarizer.Summarize(ctx, extracted, filename, mimeType), nil
}
