package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mvelkova/docextract/internal/archive"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage", "cmd", "archivels <archive.db> [limit]")
		os.Exit(2)
	}
	dbPath := os.Args[1]
	limit := 20
	if len(os.Args) >= 3 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		logger.Error("list runs", "error", err)
		os.Exit(1)
	}

	for _, run := range runs {
		fmt.Printf("%s  %-9s  %-36s  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			string(run.Status),
			run.ID,
			run.Title,
		)
	}
	fmt.Printf("%d run(s)\n", len(runs))
}
