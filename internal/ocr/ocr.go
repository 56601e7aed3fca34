// Package ocr extracts text from identity-document images and scanned PDFs
// using the external tesseract binary; PDFs are rasterized page by page with
// pdftoppm first.
package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Config points at the external binaries and fixes the OCR language.
type Config struct {
	Tesseract string // binary name or absolute path; empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; empty -> "pdftoppm"
	Lang      string // default "eng"
	DPI       int    // rasterization DPI for PDFs, default 300
}

// Engine runs OCR over single documents. Safe for concurrent use; each call
// owns its own temp files.
type Engine struct {
	cfg    Config
	runner Runner
}

// NewEngine constructs an Engine, filling config defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Engine{cfg: cfg, runner: execRunner{}}
}

// WithRunner returns a copy of the engine using the given runner. Test hook.
func (e *Engine) WithRunner(r Runner) *Engine {
	clone := *e
	clone.runner = r
	return &clone
}

// ExtractText picks a strategy based on file extension. Images go straight to
// tesseract; PDFs are rasterized and each page OCR'd in order.
func (e *Engine) ExtractText(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return e.ocrImage(ctx, path)
	case ".pdf":
		return e.ocrPDF(ctx, path)
	default:
		return "", fmt.Errorf("unsupported extension: %q", filepath.Ext(path))
	}
}

func (e *Engine) ocrImage(ctx context.Context, path string) (string, error) {
	// tesseract <file> stdout -l <lang>
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Lang)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}

func (e *Engine) ocrPDF(ctx context.Context, path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "dococr-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, _, err = e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w", err)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := e.ocrImage(ctx, img)
		if err != nil {
			return "", err
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return b.String(), nil
}
