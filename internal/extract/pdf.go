package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/mvelkova/docextract/internal/common"
)

// PDFExtractor reads PDF text in-process. No external binaries, no OCR:
// documents without a text layer come back as ErrNoText.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// Extract concatenates the plain text of every page, in page order.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		e.logger.Error("extract.pdf.missing", "path", path, "error", err)
		return TextExtractionResult{}, fmt.Errorf("%w: %s", common.ErrNotFound, path)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("extract.pdf.close_error", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	var warns []string
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{}, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		b.WriteString(txt)
		b.WriteString("\n")
	}

	res := TextExtractionResult{
		Text:     b.String(),
		Pages:    total,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warns,
	}
	if strings.TrimSpace(res.Text) == "" {
		e.logger.Error("extract.pdf.empty", "path", path, "pages", total)
		return res, fmt.Errorf("%w: %s", common.ErrNoText, path)
	}

	e.logger.Debug("extract.pdf.ok",
		"path", path,
		"pages", total,
		"bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
