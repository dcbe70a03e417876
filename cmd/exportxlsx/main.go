package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mvelkova/docextract/internal/archive"
	"github.com/mvelkova/docextract/internal/export"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "exportxlsx <archive.db> <out.xlsx>")
		os.Exit(2)
	}
	dbPath, outPath := os.Args[1], os.Args[2]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := archive.Open(ctx, dbPath, logger)
	if err != nil {
		logger.Error("open archive", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("close archive", "error", cerr)
		}
	}()

	svc := export.NewService(store, logger)
	data, err := svc.ExportRunsXLSX(ctx, 0)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		logger.Error("write workbook", "path", outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("export OK", "path", outPath, "bytes", len(data))
}
