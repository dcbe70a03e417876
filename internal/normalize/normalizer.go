// Package normalize turns raw per-page PDF text into a single cleaned blob
// the section heuristics can pattern-match against.
package normalize

import (
	"regexp"
	"strings"
)

var (
	wsRun = regexp.MustCompile(`\s+`)
	// bare numeric lines left behind by page headers/footers
	pageNumberLine = regexp.MustCompile(`\n\d+\n`)
	urlLike        = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
	emailLike      = regexp.MustCompile(`\S+@\S+`)
	newlineRun     = regexp.MustCompile(`\n+`)
)

// Clean collapses whitespace, strips page-number lines, URLs and email-like
// substrings, and trims the result. Always returns a string, possibly empty.
//
// The page-number pass runs AFTER the whitespace collapse, so its
// newline-anchored pattern rarely matches. That ordering is kept on purpose:
// downstream consumers depend on the exact output of this sequence, so it is
// not reordered even though the pass is mostly inert.
func Clean(raw string) string {
	text := wsRun.ReplaceAllString(raw, " ")
	text = pageNumberLine.ReplaceAllString(text, "\n")
	text = urlLike.ReplaceAllString(text, "")
	text = emailLike.ReplaceAllString(text, "")
	text = newlineRun.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
