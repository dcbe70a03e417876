// Package report prints a fixed-format console summary of a validated record.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mvelkova/docextract/internal/record"
)

const (
	requiredPreview = 200
	optionalPreview = 150
)

// Print writes the human-readable summary. Required fields are truncated at
// 200 characters, optional fields at 150; absent optionals are omitted.
func Print(w io.Writer, rec *record.DocumentRecord) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "EXTRACTION RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "\nDocument: %s\n", rec.Document)
	fmt.Fprintf(w, "\nIntroduction: %s\n", clip(rec.Introduction, requiredPreview))
	fmt.Fprintf(w, "\nThoughts: %s\n", clip(rec.Thoughts, requiredPreview))
	fmt.Fprintf(w, "\nAnswers: %s\n", clip(rec.Answers, requiredPreview))

	optional(w, "Further Reading", rec.FurtherReading)
	optional(w, "Images", rec.Images)
	optional(w, "Further Development", rec.FurtherDevelopment)
}

func optional(w io.Writer, label string, v *string) {
	if v == nil {
		return
	}
	fmt.Fprintf(w, "\n%s: %s\n", label, clip(*v, optionalPreview))
}

// clip truncates at max characters, on a rune boundary.
func clip(s string, max int) string {
	if utf8.RuneCountInString(s) > max {
		return string([]rune(s)[:max]) + "..."
	}
	return s
}
