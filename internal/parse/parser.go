package parse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/common"
)

// TextAcquirer is the boundary to the acquisition layer.
type TextAcquirer interface {
	AcquireText(ctx context.Context, data []byte, format constants.Format) (string, error)
}

// Parser runs the full extraction pipeline: acquire text, then derive
// each field independently. Parsing is stateless per call, so a single
// Parser is safe for concurrent use across documents.
type Parser struct {
	acquirer TextAcquirer
	logger   *slog.Logger
}

func NewParser(acquirer TextAcquirer, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{acquirer: acquirer, logger: logger}
}

// Parse converts raw document bytes into a Record. The only failures are
// an unsupported format and a blank text blob; every field-level miss
// degrades to its documented default instead.
func (p *Parser) Parse(ctx context.Context, data []byte, format constants.Format) (Record, error) {
	text, err := p.acquirer.AcquireText(ctx, data, format)
	if err != nil {
		return Record{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Record{}, common.NewAppError("NO_TEXT", "could not extract any meaningful text", common.ErrNoExtractableText)
	}

	// The extractors share nothing but the text blob; their order does
	// not matter.
	rec := Record{
		Vendor:   ExtractVendor(text),
		TxDate:   ExtractDate(text),
		Amount:   ExtractAmount(text),
		Category: ClassifyCategory(text),
	}

	p.logger.Debug("parsed document",
		"format", format,
		"vendor", rec.Vendor,
		"has_date", rec.TxDate != nil,
		"has_amount", rec.Amount != nil,
		"category", rec.Category,
	)
	return rec, nil
}
