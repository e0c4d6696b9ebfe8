package processing_engine

import (
	"context"

	"go.uber.org/zap"
)

const ocrInstruction = `You are a highly accurate OCR and document extraction engine.
Your task is to convert the provided image into text while preserving the original structure and formatting as closely as possible.

Follow these rules:
1. **Text Fidelity:** Transcribe text exactly as it appears. Do not summarize or correct grammar.
2. **Tables:** If the image contains tables, represent them using Markdown table syntax.
3. **Headings:** Use Markdown headers (#, ##, ###) to represent titles and section headings.
4. **Lists:** Use Markdown bullet points or numbered lists to represent list items.
5. **Legibility:** If parts of the text are illegible or cut off, output "[Illegible]" or "[Cut off]" for those specific sections.
6. **No Conversational Filler:** Do not start with "Here is the text" or "Sure." Output *only* the extracted content.`

// extractImage has no local parsing step: the raw bytes go straight to
// the vision model with a fixed OCR instruction, and the full response
// is treated as the extracted text before the summarization pass.
func (p *Processor) extractImage(ctx context.Context, filename string, data []byte, mimeType string) (string, error) {
	response, err := p.generator.GenerateFromImage(ctx, mimeType, data, ocrInstruction)
	if err != nil {
		return "", &ExtractionError{Format: "image", Err: err}
	}

	p.logger.Info("processed image with multimodal model", zap.String("filename", filename))

	return p.summarizer.Summarize(ctx, response, filename, mimeType), nil
}
