package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/entity"
	"github.com/spendlens/spendlens/internal/parse"
	"github.com/spendlens/spendlens/internal/repository"
	"github.com/spendlens/spendlens/internal/utils"
	"github.com/spendlens/spendlens/internal/validation"
)

// DocumentParser is the boundary to the extraction pipeline.
type DocumentParser interface {
	Parse(ctx context.Context, data []byte, format constants.Format) (parse.Record, error)
}

// Service runs the full ingest path: parse the document, resolve
// defaults, validate the resulting payload against the receipt schema,
// and persist it.
type Service struct {
	parser DocumentParser
	repo   repository.ReceiptRepository
	schema map[string]any
	logger *slog.Logger
	now    func() time.Time
}

func NewService(parser DocumentParser, repo repository.ReceiptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		parser: parser,
		repo:   repo,
		schema: validation.BuildReceiptSchema(),
		logger: logger,
		now:    time.Now,
	}
}

// IngestBytes parses raw document bytes named by filename and stores the
// resulting receipt. The extension decides the format.
func (s *Service) IngestBytes(ctx context.Context, filename string, data []byte) (*entity.Receipt, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return nil, common.NewAppError("UNSUPPORTED_FORMAT",
			"unsupported file extension: "+ext, common.ErrUnsupportedFormat)
	}

	rec, err := s.parser.Parse(ctx, data, format)
	if err != nil {
		return nil, err
	}

	fields := validation.ApplyDefaults(rec, s.now())
	receipt := &entity.Receipt{
		Vendor:           fields.Vendor,
		TxDate:           fields.TxDate,
		Amount:           fields.Amount,
		Category:         fields.Category,
		OriginalFilename: filepath.Base(filename),
	}

	if err := s.validate(receipt); err != nil {
		return nil, common.NewAppError("VALIDATION_FAILED", "receipt failed schema validation", err)
	}

	stored, err := s.repo.Create(ctx, receipt)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ingested receipt",
		"id", stored.ID,
		"filename", stored.OriginalFilename,
		"vendor", stored.Vendor,
		"amount", stored.Amount,
		"category", stored.Category,
	)
	return stored, nil
}

// IngestFile reads path from disk and ingests its contents.
func (s *Service) IngestFile(ctx context.Context, path string) (*entity.Receipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read file")
	}
	return s.IngestBytes(ctx, filepath.Base(path), data)
}

func (s *Service) validate(r *entity.Receipt) error {
	payload, err := json.Marshal(map[string]any{
		"vendor":            r.Vendor,
		"transaction_date":  utils.FormatYMD(r.TxDate),
		"amount":            r.Amount,
		"category":          r.Category,
		"original_filename": r.OriginalFilename,
	})
	if err != nil {
		return err
	}
	return validation.ValidateJSONAgainstSchema(s.schema, payload)
}
