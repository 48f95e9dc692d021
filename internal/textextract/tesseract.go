package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
)

// reBoxNoise strips runs of box-drawing characters tesseract tends to emit
// for receipt borders.
var reBoxNoise = regexp.MustCompile(`[|_¦]{2,}`)

// OCRConfig configures the tesseract invocation.
type OCRConfig struct {
	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	Lang        string // default "eng"
	TessdataDir string
}

// OCRExtractor runs tesseract over an image to recover its text. The
// binary is invoked through a Runner so tests can stub it out.
type OCRExtractor struct {
	cfg    OCRConfig
	runner Runner
	logger *slog.Logger
}

func NewOCRExtractor(cfg OCRConfig, logger *slog.Logger) *OCRExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &OCRExtractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

func (e *OCRExtractor) Extract(ctx context.Context, data []byte) (Result, error) {
	tmp, err := os.CreateTemp("", "spendlens-ocr-*")
	if err != nil {
		return Result{}, fmt.Errorf("ocr temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		return Result{}, fmt.Errorf("ocr temp write: %w", err)
	}

	args := []string{tmp.Name(), "stdout", "-l", e.cfg.Lang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return Result{
		Text:   txt,
		Pages:  1,
		Method: "image-ocr",
	}, nil
}
