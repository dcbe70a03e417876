// Package pipeline wires the four stages together:
// acquisition -> normalization -> heuristic extraction -> enhancement -> validation.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mvelkova/docextract/constants"
	"github.com/mvelkova/docextract/internal/archive"
	"github.com/mvelkova/docextract/internal/extract"
	"github.com/mvelkova/docextract/internal/llm"
	"github.com/mvelkova/docextract/internal/normalize"
	"github.com/mvelkova/docextract/internal/record"
	"github.com/mvelkova/docextract/internal/sections"
)

// Processor runs one document at a time, synchronously. The injected logger is
// the checkpoint observer: each stage reports start/ok/failed events through
// it and the stage logic itself stays silent.
type Processor struct {
	Logger    *slog.Logger
	Extractor extract.TextExtractor
	Enhancer  *llm.Enhancer          // nil-invoker enhancer degrades to passthrough
	Archive   *archive.Store         // optional; archive failure is never fatal
}

func NewProcessor(logger *slog.Logger, tx extract.TextExtractor, enh *llm.Enhancer, store *archive.Store) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extractor: tx, Enhancer: enh, Archive: store}
}

// Result carries the validated record plus run metadata.
type Result struct {
	Record   *record.DocumentRecord
	Pages    int
	RawBytes int
	Enhanced bool
}

// ProcessFile runs the full extraction pipeline for one document. Acquisition
// and validation errors are fatal; enhancement failures degrade to the
// heuristic-only record.
func (p *Processor) ProcessFile(ctx context.Context, path string) (Result, error) {
	// 1) Acquisition
	tx, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		p.Logger.Error("pipeline.acquire.failed", "path", path, "error", err)
		return Result{}, fmt.Errorf("acquire text: %w", err)
	}
	p.Logger.Info("pipeline.acquire.ok",
		"path", path,
		"method", tx.Method,
		"pages", tx.Pages,
		"bytes", len(tx.Text),
		"warnings", len(tx.Warnings),
	)

	// 2) Normalization
	cleanText := normalize.Clean(tx.Text)
	p.Logger.Info("pipeline.normalize.ok", "bytes", len(cleanText))

	// 3) Heuristic extraction
	fields := sections.ExtractStructure(cleanText)
	p.Logger.Info("pipeline.extract.ok", "title", fields[constants.FieldDocument])

	// 4) Optional enhancement
	enhanced := false
	if p.Enhancer != nil {
		fields, enhanced = p.Enhancer.Enhance(ctx, fields, cleanText)
	}

	// 5) Validation — the hard boundary
	rec, err := record.FromFields(fields)
	if err != nil {
		p.Logger.Error("pipeline.validate.failed", "path", path, "error", err)
		return Result{}, err
	}
	p.Logger.Info("pipeline.validate.ok", "document", rec.Document, "enhanced", enhanced)

	res := Result{
		Record:   rec,
		Pages:    tx.Pages,
		RawBytes: len(tx.Text),
		Enhanced: enhanced,
	}
	p.archiveRun(ctx, path, res)
	return res, nil
}

func (p *Processor) archiveRun(ctx context.Context, path string, res Result) {
	if p.Archive == nil {
		return
	}
	status := constants.RunStatusExtracted
	if res.Enhanced {
		status = constants.RunStatusEnhanced
	}
	raw, err := json.Marshal(res.Record)
	if err != nil {
		p.Logger.Warn("pipeline.archive.marshal_failed", "error", err)
		return
	}
	run := archive.Run{
		SourcePath: path,
		Title:      res.Record.Document,
		Status:     status,
		RecordJSON: raw,
	}
	if err := p.Archive.SaveRun(ctx, run); err != nil {
		p.Logger.Warn("pipeline.archive.save_failed", "error", err)
	}
}
