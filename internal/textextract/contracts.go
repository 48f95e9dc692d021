package textextract

import "context"

// TextExtractor converts raw file bytes into plain text. Implementations
// wrap a potentially slow external engine (OCR binary, PDF text layer).
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (Result, error)
}

// Result carries the extracted text plus enough metadata for callers to
// tell an unavailable engine apart from a document that simply had no text.
type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "image-ocr" | "plain-text"
	Warnings []string
}
