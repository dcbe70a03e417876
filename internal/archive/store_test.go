package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mvelkova/docextract/constants"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "archive.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestSaveAndListRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	older := Run{
		SourcePath: "/papers/first.pdf",
		Title:      "First Paper",
		Status:     constants.RunStatusExtracted,
		RecordJSON: []byte(`{"document":"First Paper"}`),
		CreatedAt:  time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	newer := Run{
		SourcePath: "/papers/second.pdf",
		Title:      "Second Paper",
		Status:     constants.RunStatusEnhanced,
		RecordJSON: []byte(`{"document":"Second Paper"}`),
		CreatedAt:  time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
	}
	if err := store.SaveRun(ctx, older); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := store.SaveRun(ctx, newer); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Title != "Second Paper" || runs[1].Title != "First Paper" {
		t.Errorf("runs not newest-first: %q, %q", runs[0].Title, runs[1].Title)
	}
	if runs[0].Status != constants.RunStatusEnhanced {
		t.Errorf("Status = %q", runs[0].Status)
	}
	if string(runs[1].RecordJSON) != `{"document":"First Paper"}` {
		t.Errorf("RecordJSON = %s", runs[1].RecordJSON)
	}
	if runs[0].ID == uuid.Nil {
		t.Error("run ID not assigned")
	}
	if !runs[0].CreatedAt.Equal(newer.CreatedAt) {
		t.Errorf("CreatedAt = %v", runs[0].CreatedAt)
	}
}

func TestListRunsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		run := Run{
			SourcePath: "/papers/p.pdf",
			Title:      "Paper",
			Status:     constants.RunStatusExtracted,
			RecordJSON: []byte(`{}`),
			CreatedAt:  time.Date(2026, 1, 1, i, 0, 0, 0, time.UTC),
		}
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx, 3)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
}

func TestListRunsEmpty(t *testing.T) {
	store := openTestStore(t)
	runs, err := store.ListRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}
