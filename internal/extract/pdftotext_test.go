package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvelkova/docextract/internal/common"
)

type stubRunner struct {
	stdout string
	stderr string
	err    error
}

func (s stubRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	return []byte(s.stdout), []byte(s.stderr), s.err
}

func tempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPdftotextExtract(t *testing.T) {
	e := NewPdftotextExtractor("", nil)
	e.runner = stubRunner{stdout: "page one text\fpage two text"}

	res, err := e.Extract(context.Background(), tempPDF(t))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	if res.Method != "pdftotext" {
		t.Errorf("Method = %q", res.Method)
	}
	if res.Text != "page one text\fpage two text" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestPdftotextMissingFile(t *testing.T) {
	e := NewPdftotextExtractor("", nil)
	e.runner = stubRunner{stdout: "never reached"}

	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPdftotextEmptyOutput(t *testing.T) {
	e := NewPdftotextExtractor("", nil)
	e.runner = stubRunner{stdout: "  \n \f  "}

	_, err := e.Extract(context.Background(), tempPDF(t))
	if !errors.Is(err, common.ErrNoText) {
		t.Errorf("err = %v, want ErrNoText", err)
	}
}

func TestPdftotextCommandFailure(t *testing.T) {
	e := NewPdftotextExtractor("", nil)
	e.runner = stubRunner{stderr: "Syntax Error: bad xref", err: errors.New("exit status 1")}

	res, err := e.Extract(context.Background(), tempPDF(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(res.Warnings) == 0 {
		t.Error("stderr not surfaced as warning")
	}
}

func TestPDFExtractorMissingFile(t *testing.T) {
	e := NewPDFExtractor(nil)
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
