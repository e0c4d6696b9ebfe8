package processing_engine

import (
	"bytes"
	"context"

	"code.sajari.com/docconv"
	"go.uber.org/zap"
)

// extractOffice handles the legacy office formats (RTF, ODT) through
// docconv, which flattens them to a plain text body.
func (p *Processor) extractOffice(ctx context.Context, filename string, data []byte, mimeType string) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), p.cfg.CanonicalMime(extensionOf(filename)), false)
	if err != nil {
		return "", &ExtractionError{Format: "office document", Err: err}
	}

	p.logger.Info("extracted office document text",
		zap.String("filename", filename),
		zap.Int("chars", len(res.Body)))

	extracted := truncate(res.Body, p.cfg.TextExtractLimit)
	return p.summarizer.Summarize(ctx, extracted, filename, mimeType), nil
}
