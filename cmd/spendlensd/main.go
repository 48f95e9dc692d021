package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/export"
	"github.com/spendlens/spendlens/internal/ingest"
	"github.com/spendlens/spendlens/internal/parse"
	"github.com/spendlens/spendlens/internal/repository"
	"github.com/spendlens/spendlens/internal/server"
	"github.com/spendlens/spendlens/internal/textextract"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.Database.Path, cfg.Database.DialTimeout, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", cfg.Database.Path)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	if err := repository.HealthCheck(ctx, db, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	repo := repository.NewReceiptRepository(db, logger)

	ocr := textextract.NewOCRExtractor(textextract.OCRConfig{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)
	pdf := textextract.NewPDFExtractor(0, logger)
	acquirer := textextract.NewAcquirer(ocr, pdf, logger)
	parser := parse.NewParser(acquirer, logger)

	ingestSvc := ingest.NewService(parser, repo, logger)
	exportSvc := export.NewService(repo, logger)

	srv := server.New(ingestSvc, repo, exportSvc, cfg.Server.MaxUploadBytes, logger)
	e := srv.NewEcho()

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := e.Start(cfg.Server.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
