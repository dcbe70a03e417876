package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/mvelkova/docextract/internal/archive"
	"github.com/mvelkova/docextract/internal/record"
)

// Service is a tiny façade over the archive that produces XLSX bytes for exports.
type Service struct {
	store  *archive.Store
	logger *slog.Logger
}

func NewService(store *archive.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ExportRunsXLSX returns an XLSX workbook (as bytes) with one row per archived
// extraction run, newest first. limit <= 0 exports everything.
func (s *Service) ExportRunsXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	runs, err := s.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Extracted At",
		"Source File",
		"Document Title",
		"Status",
		"Introduction",
		"Thoughts",
		"Answers",
		"Further Reading",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "A", "D", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "E", "H", 48); err != nil {
		return nil, err
	}

	for row, run := range runs {
		var rec record.DocumentRecord
		if err := json.Unmarshal(run.RecordJSON, &rec); err != nil {
			s.logger.Warn("export.decode_record_failed", "run_id", run.ID, "error", err)
			continue
		}

		values := []any{
			run.CreatedAt.Format(time.RFC3339),
			run.SourcePath,
			rec.Document,
			string(run.Status),
			preview(rec.Introduction),
			preview(rec.Thoughts),
			preview(rec.Answers),
			previewPtr(rec.FurtherReading),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"runs", len(runs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

const previewChars = 200

// preview truncates at previewChars characters, on a rune boundary.
func preview(s string) string {
	if utf8.RuneCountInString(s) > previewChars {
		return string([]rune(s)[:previewChars]) + "..."
	}
	return s
}

func previewPtr(s *string) string {
	if s == nil {
		return ""
	}
	return preview(*s)
}
