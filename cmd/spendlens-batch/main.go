package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/async"
	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/export"
	"github.com/spendlens/spendlens/internal/ingest"
	"github.com/spendlens/spendlens/internal/parse"
	"github.com/spendlens/spendlens/internal/repository"
	"github.com/spendlens/spendlens/internal/textextract"
)

func main() {
	var (
		dir    = flag.String("dir", "", "directory to ingest receipts from (required)")
		out    = flag.String("out", "", "output XLSX file path (optional)")
		inmem  = flag.Bool("inmem", false, "use an in-memory SQLite database")
		hidden = flag.Bool("skip-hidden", true, "skip hidden files and directories")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		logger.Error("--dir is required")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	dbPath := cfg.Database.Path
	if *inmem {
		dbPath = ":memory:"
	}

	ctx := context.Background()

	db, err := repository.Open(ctx, dbPath, cfg.Database.DialTimeout, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", dbPath)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	repo := repository.NewReceiptRepository(db, logger)

	ocr := textextract.NewOCRExtractor(textextract.OCRConfig{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)
	pdf := textextract.NewPDFExtractor(0, logger)
	parser := parse.NewParser(textextract.NewAcquirer(ocr, pdf, logger), logger)
	svc := ingest.NewService(parser, repo, logger)

	queue := async.NewIngestQueue(svc, logger,
		async.WithWorkers(cfg.Batch.Workers),
		async.WithQueueSize(cfg.Batch.QueueSize),
		async.WithJobTimeout(cfg.Batch.JobTimeout),
	)

	var matched int
	walkErr := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("walk error", "path", path, "error", err)
			return nil
		}
		base := filepath.Base(path)
		if *hidden && strings.HasPrefix(base, ".") && path != *dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if constants.MapExtToFormat(filepath.Ext(path)) == "" {
			return nil
		}
		matched++
		return queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now()})
	})
	if walkErr != nil {
		logger.Error("directory walk failed", "error", walkErr)
	}

	drainCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()
	queue.Shutdown(drainCtx)

	logger.Info("batch ingest finished", "dir", *dir, "matched", matched)

	if *out != "" {
		exportSvc := export.NewService(repo, logger)
		data, err := exportSvc.ExportXLSX(ctx, repository.Filter{})
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			logger.Error("failed to write export file", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("wrote export", "path", *out)
	}
}
