package processing_engine

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// A .docx file is a zip archive; the text lives in word/document.xml.
// Field mapping below matches direct children only, so body paragraphs
// and table-cell paragraphs stay separate.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

type docxTable struct {
	Rows []docxRow `xml:"tr"`
}

type docxRow struct {
	Cells []docxCell `xml:"tc"`
}

type docxCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

func (p docxParagraph) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Texts {
			b.WriteString(t)
		}
	}
	return b.String()
}

// extractDOCX emits all body paragraphs first, then all tables, each
// row rendered as "Table row:" with cell values joined by " | ". The
// two separate passes are deliberate; interleaved reconstruction of
// true document order is not attempted.
func (p *Processor) extractDOCX(ctx context.Context, filename string, data []byte, mimeType string) (string, error) {
	doc, err := parseDocx(data)
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Err: err}
	}

	var b strings.Builder
	for _, para := range doc.Body.Paragraphs {
		if t := para.text(); t != "" {
			b.WriteString(t)
			b.WriteString("\n")
		}
	}

	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			var cells []string
			for _, cell := range row.Cells {
				var cellText strings.Builder
				for _, para := range cell.Paragraphs {
					cellText.WriteString(para.text())
				}
				if s := cellText.String(); s != "" {
					cells = append(cells, s)
				}
			}
			if len(cells) > 0 {
				fmt.Fprintf(&b, "Table row: %s\n", strings.Join(cells, " | "))
			}
		}
	}

	p.logger.Info("extracted DOCX text",
		zap.String("filename", filename),
		zap.Int("chars", b.Len()))

	extracted := strings.TrimSpace(truncate(b.String(), p.cfg.TextExtractLimit))
	return p.summarizer.Summarize(ctx, extracted, filename, mimeType), nil
}

func parseDocx(data []byte) (*docxDocument, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()

		raw, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}

		var doc docxDocument
		if err := xml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}
		return &doc, nil
	}

	return nil, fmt.Errorf("word/document.xml not found in archive")
}
