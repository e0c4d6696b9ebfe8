package core

import "context"

// TextGenerator is the external generation service the pipeline depends
// on, for both text summarization and vision-based image interpretation.
type TextGenerator interface {
	// Generate runs a text prompt under an optional system instruction.
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)

	// GenerateFromImage sends raw image bytes plus an instruction to a
	// vision-capable model and returns the model's text response.
	GenerateFromImage(ctx context.Context, mimeType string, data []byte, instruction string) (string, error)
}
