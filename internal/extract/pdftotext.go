package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mvelkova/docextract/internal/common"
)

// PdftotextExtractor shells out to poppler's pdftotext. Useful for PDFs the
// pure-Go reader chokes on (odd encodings, newer compression filters).
type PdftotextExtractor struct {
	bin    string
	runner Runner
	logger *slog.Logger
}

func NewPdftotextExtractor(bin string, logger *slog.Logger) *PdftotextExtractor {
	if bin == "" {
		bin = "pdftotext"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PdftotextExtractor{bin: bin, runner: execRunner{}, logger: logger}
}

func (e *PdftotextExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		e.logger.Error("extract.pdftotext.missing", "path", path, "error", err)
		return TextExtractionResult{}, fmt.Errorf("%w: %s", common.ErrNotFound, path)
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.bin, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return TextExtractionResult{Warnings: []string{string(errb)}}, fmt.Errorf("pdftotext: %w", err)
	}

	text := string(out)
	res := TextExtractionResult{
		Text: text,
		// A form-feed \f is used as page separator by default
		Pages:    1 + strings.Count(text, "\f"),
		Method:   "pdftotext",
		Duration: time.Since(start),
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Error("extract.pdftotext.empty", "path", path)
		return res, fmt.Errorf("%w: %s", common.ErrNoText, path)
	}
	return res, nil
}
