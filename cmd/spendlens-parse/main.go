package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spendlens/spendlens/constants"
	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/parse"
	"github.com/spendlens/spendlens/internal/textextract"
)

// spendlens-parse runs the extraction pipeline over a single file and
// prints the parsed record as JSON, without touching a database.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: spendlens-parse <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		fmt.Fprintf(os.Stderr, "unsupported file extension: %s\n", filepath.Ext(path))
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read file: %v\n", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	ocr := textextract.NewOCRExtractor(textextract.OCRConfig{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)
	pdf := textextract.NewPDFExtractor(0, logger)
	parser := parse.NewParser(textextract.NewAcquirer(ocr, pdf, logger), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rec, err := parser.Parse(ctx, data, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
