package processing_engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Candidate encodings tried in order for plain-text files. Latin-1 maps
// every byte, so the later entries only matter if the order changes.
// Decoders are stateful; a fresh one is built per call so concurrent
// batch tasks never share a transformer.
var txtEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"latin-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// extractTXT decodes the bytes with the first encoding that accepts
// them, UTF-8 first. It never fails: when nothing matches, a best-effort
// UTF-8 decode substitutes the replacement character for bad sequences.
func (p *Processor) extractTXT(ctx context.Context, filename string, data []byte, mimeType string) (string, error) {
	text, encodingName := decodeText(data)

	p.logger.Info("extracted TXT text",
		zap.String("filename", filename),
		zap.String("encoding", encodingName),
		zap.Int("chars", len(text)))

	extracted := truncate(text, p.cfg.TextExtractLimit)
	return p.summarizer.Summarize(ctx, extracted, filename, mimeType), nil
}

func decodeText(data []byte) (text, encodingName string) {
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}

	for _, candidate := range txtEncodings {
		decoded, err := candidate.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), candidate.name
	}

	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), "utf-8-replace"
}
