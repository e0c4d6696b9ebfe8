package processing_engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/markdave123-py/Condensa/internal/core"
)

// NoContentSentinel is returned for empty or whitespace-only input
// without contacting the generation service.
const NoContentSentinel = "No extractable text content found."

const summaryInstructionTemplate = `You are a summarization assistant specialized in long-form content.

Input context
- **Filename**: %q
- **Document Category**: %q

When summarizing, you must:
- Preserve original meaning, intent, and logical flow
- Extract only the most relevant information
- Remove redundancy while keeping factual accuracy
- Use clear, structured, concise language

Constraints:
- No opinions, assumptions, or invented facts
- No altering context beyond compression
- If ambiguous, summarize only what is certain

Tone & Style:
- Neutral, professional, short, clear, direct
- Summary length: 10-30%% of original
- Always end with a 1-sentence summary (<=20 words)

Mandatory Output Format:
1. Title (only if original had one)
*Short, accurate summary title*

2. Executive Summary (1 paragraph, 3-5 sentences)
*Concise overview of full content*

3. Main Points (bullet list, 3+ key ideas)
- Key idea 1
- Key idea 2
- Key idea 3
- Additional essential details if needed

4. Section Breakdown (only if original had multiple topics)
**Section A - Topic**
- Highlight 1
- Highlight 2

5. Important Data & Facts (only if useful)
| Fact/Metric | Detail |
|---|---|
| Example | Result |

6. Key Takeaways (3-5 insights)
- Insight 1
- Insight 2
- Insight 3

7. One-Sentence Summary (<=20 words)
*Factual compression of entire content*

8. Tags (only if original topics are identifiable)
topic1, topic2

Final Rules:
- Follow the format exactly
- Always include sections 2, 3, 6, 7
- Exclude optional sections if they add no value
- Make the summary scannable and fact-driven`

// Summarizer condenses extracted text through the generation service.
// Its failures are absorbed: a service error degrades to truncated
// original content, so the caller always receives usable text.
type Summarizer struct {
	generator core.TextGenerator
	cfg       *ProcessingConfig
	logger    *zap.Logger
}

func NewSummarizer(generator core.TextGenerator, cfg *ProcessingConfig, logger *zap.Logger) *Summarizer {
	return &Summarizer{generator: generator, cfg: cfg, logger: logger}
}

// Summarize sends text to the generation service with the fixed
// structured-output instruction and returns the response verbatim.
func (s *Summarizer) Summarize(ctx context.Context, text, filename, docType string) string {
	if strings.TrimSpace(text) == "" {
		return NoContentSentinel
	}

	instruction := fmt.Sprintf(summaryInstructionTemplate, filename, docType)

	summary, err := s.generator.Generate(ctx, instruction, text)
	if err != nil {
		s.logger.Error("summarization failed, returning original content",
			zap.String("filename", filename),
			zap.Error(err))
		return "Original content:\n\n" + truncate(text, s.cfg.TextExtractLimit)
	}

	s.logger.Info("summarized document text",
		zap.String("filename", filename),
		zap.String("doc_type", docType))
	return summary
}

// truncate limits s to at most limit characters (runes, not bytes).
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
