package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor pulls the embedded text layer out of a PDF with go-fitz.
// Scanned PDFs without a text layer yield an empty result, which the
// pipeline treats the same as any other unreadable document.
type PDFExtractor struct {
	maxPages int
	logger   *slog.Logger
}

func NewPDFExtractor(maxPages int, logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{maxPages: maxPages, logger: logger}
}

func (p *PDFExtractor) Extract(ctx context.Context, data []byte) (Result, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Result{}, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if p.maxPages > 0 && pages > p.maxPages {
		pages = p.maxPages
	}

	var b strings.Builder
	var warns []string
	for i := 0; i < pages; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		txt, err := doc.Text(i)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d: %v", i+1, err))
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
	}

	return Result{
		Text:     b.String(),
		Pages:    pages,
		Method:   "pdf-text",
		Warnings: warns,
	}, nil
}
