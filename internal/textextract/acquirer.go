package textextract

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/common"
)

// Acquirer is the single entry point from raw bytes to a text blob. The
// format is dispatched exactly once here; engine failures on image/PDF
// inputs degrade to empty text rather than propagating, so the only hard
// failures a caller sees are an unsupported format or, downstream, a blank
// blob.
type Acquirer struct {
	image  TextExtractor
	pdf    TextExtractor
	logger *slog.Logger
}

func NewAcquirer(image, pdf TextExtractor, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Acquirer{image: image, pdf: pdf, logger: logger}
}

// AcquireText converts data of the given format into a text blob.
// Returns ErrUnsupportedFormat for formats outside the closed set.
func (a *Acquirer) AcquireText(ctx context.Context, data []byte, format constants.Format) (string, error) {
	switch format {
	case constants.IMAGE:
		return a.extract(ctx, a.image, data, format), nil
	case constants.PDF:
		return a.extract(ctx, a.pdf, data, format), nil
	case constants.TEXT:
		return decodePlainText(data), nil
	default:
		return "", common.NewAppError("UNSUPPORTED_FORMAT", string(format), common.ErrUnsupportedFormat)
	}
}

func (a *Acquirer) extract(ctx context.Context, e TextExtractor, data []byte, format constants.Format) string {
	if e == nil {
		a.logger.Warn("no extractor configured", "format", format)
		return ""
	}
	res, err := e.Extract(ctx, data)
	if err != nil {
		a.logger.Warn("text extraction failed", "format", format, "error", err)
		return ""
	}
	if len(res.Warnings) > 0 {
		a.logger.Debug("text extraction warnings", "format", format, "warnings", strings.Join(res.Warnings, "; "))
	}
	return res.Text
}

// decodePlainText decodes bytes as UTF-8, dropping invalid sequences
// instead of failing. Plain-text acquisition never errors.
func decodePlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}
