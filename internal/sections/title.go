package sections

import (
	"strings"
	"unicode/utf8"

	"github.com/mvelkova/docextract/constants"
)

// Title returns the first line in the opening window of the document that
// looks like a title: more than TitleMinLength characters and free of journal
// header markers (issn, doi, ©, page, volume). Falls back to a fixed sentinel,
// never an empty string.
func Title(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > constants.TitleScanLines {
		lines = lines[:constants.TitleScanLines]
	}

	for _, line := range lines {
		if hasSkipMarker(line) {
			continue
		}
		if utf8.RuneCountInString(line) > constants.TitleMinLength {
			return line
		}
	}
	return constants.TitleNotFound
}

func hasSkipMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range constants.TitleSkipMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
