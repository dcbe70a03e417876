package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mvelkova/docextract/internal/archive"
	"github.com/mvelkova/docextract/internal/common"
	"github.com/mvelkova/docextract/internal/extract"
	"github.com/mvelkova/docextract/internal/llm"
	"github.com/mvelkova/docextract/internal/llm/anthropic"
	"github.com/mvelkova/docextract/internal/llm/openai"
	"github.com/mvelkova/docextract/internal/pipeline"
	"github.com/mvelkova/docextract/internal/record"
	"github.com/mvelkova/docextract/internal/report"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "docextract <paper.pdf> [out.json]")
		os.Exit(2)
	}
	pdfPath := os.Args[1]
	outPath := "extracted_document.json"
	if len(os.Args) == 3 {
		outPath = os.Args[2]
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Text acquisition
	var tx extract.TextExtractor
	switch cfg.Extractor.Backend {
	case "pdftotext":
		tx = extract.NewPdftotextExtractor(cfg.Extractor.Pdftotext, logger)
	default:
		tx = extract.NewPDFExtractor(logger)
	}

	// Optional enhancement
	var invoker llm.Invoker
	switch cfg.LLM.Provider {
	case "openai":
		invoker = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	case "anthropic":
		invoker = anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			MaxTokens: cfg.LLM.MaxTokens,
			Timeout:   cfg.LLM.Timeout,
		}, logger)
	case "":
		logger.Info("no LLM provider configured, using heuristic extraction only")
	default:
		logger.Error("unknown LLM provider", "provider", cfg.LLM.Provider)
		os.Exit(1)
	}
	enhancer := llm.NewEnhancer(invoker, logger)

	// Optional run archive
	var store *archive.Store
	if cfg.Archive.Path != "" {
		var err error
		store, err = archive.Open(ctx, cfg.Archive.Path, logger)
		if err != nil {
			logger.Error("open archive", "path", cfg.Archive.Path, "error", err)
			os.Exit(1)
		}
		defer func() {
			if cerr := store.Close(); cerr != nil {
				logger.Warn("close archive", "error", cerr)
			}
		}()
	}

	p := pipeline.NewProcessor(logger, tx, enhancer, store)

	start := time.Now()
	res, err := p.ProcessFile(ctx, pdfPath)
	if err != nil {
		logger.Error("extraction failed",
			"path", pdfPath, "error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"path", pdfPath,
		"pages", res.Pages,
		"enhanced", res.Enhanced,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	report.Print(os.Stdout, res.Record)
	if !record.Save(res.Record, outPath, logger) {
		os.Exit(1)
	}
}
