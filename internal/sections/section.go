// Package sections is the heuristic core: pattern matching over cleaned text
// to locate the labeled regions of a scientific paper.
package sections

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// boundaryPatterns delimit where a located section ends. The list is shared by
// every caller and ordered: the first entry that matches wins, regardless of
// position. They are searched in the lowercased copy of the text, which makes
// the all-caps heading entry unable to match; it is kept for compatibility
// with the established output.
var boundaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\n[A-Z][A-Z\s]+\n`),
	regexp.MustCompile(`\breferences\b`),
	regexp.MustCompile(`\bconclusion\b`),
	regexp.MustCompile(`\bdiscussion\b`),
}

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

// ByPatterns scans for the first start pattern that matches (earlier patterns
// take priority over later ones, not closer matches), then cuts the section at
// the first boundary pattern found after the start position. Matching happens
// on a lowercased copy; the returned slice comes from the original text so
// casing is preserved. The trimmed section is capped at maxChars characters,
// not bytes, so multibyte content is never cut mid-rune.
//
// Returns ok=false when no start pattern matches, or when the first matching
// pattern yields an empty section after trimming.
func ByPatterns(text string, patterns []*regexp.Regexp, maxChars int) (section string, ok bool) {
	lower := strings.ToLower(text)

	for _, pat := range patterns {
		loc := pat.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		start := loc[1]

		end := len(text)
		for _, bp := range boundaryPatterns {
			if bloc := bp.FindStringIndex(lower[start:]); bloc != nil {
				end = start + bloc[0]
				break
			}
		}

		section = strings.TrimSpace(text[start:end])
		if section == "" {
			return "", false
		}
		if utf8.RuneCountInString(section) > maxChars {
			section = string([]rune(section)[:maxChars])
		}
		return section, true
	}
	return "", false
}
