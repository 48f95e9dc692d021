package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spendlens/spendlens/internal/entity"
	"github.com/spendlens/spendlens/internal/repository"
	"github.com/spendlens/spendlens/internal/utils"
)

// Service is a tiny façade over the receipt repository that renders
// filtered receipt sets as CSV or XLSX bytes.
type Service struct {
	repo   repository.ReceiptRepository
	logger *slog.Logger
}

func NewService(repo repository.ReceiptRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

var exportHeaders = []string{
	"Transaction Date",
	"Vendor",
	"Category",
	"Amount",
	"Original Filename",
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per
// receipt matching the filter.
func (s *Service) ExportXLSX(ctx context.Context, filter repository.Filter) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, utils.FormatYMD(r.TxDate))
		write(2, r.Vendor)
		write(3, r.Category)
		write(4, r.Amount)
		write(5, r.OriginalFilename)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // vendor
	_ = f.SetColWidth(sheet, "C", "C", 22) // category
	_ = f.SetColWidth(sheet, "D", "D", 14) // amount
	_ = f.SetColWidth(sheet, "E", "E", 40) // filename

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportCSV returns the same rows as ExportXLSX in CSV form, header
// included.
func (s *Service) ExportCSV(ctx context.Context, filter repository.Filter) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	for _, r := range recs {
		if err := w.Write(csvRow(r)); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func csvRow(r *entity.Receipt) []string {
	return []string{
		utils.FormatYMD(r.TxDate),
		r.Vendor,
		r.Category,
		strconv.FormatFloat(r.Amount, 'f', 2, 64),
		r.OriginalFilename,
	}
}
