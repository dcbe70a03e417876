package sections

import (
	"strings"

	"github.com/mvelkova/docextract/constants"
)

var referencesPatterns = compileAll(constants.ReferencesPatterns)

// References locates a references/bibliography/citations section and returns
// up to MaxReferences citation-looking lines joined with "; ". Lines shorter
// than MinReferenceChars or purely numeric (page-number noise) are dropped.
// Returns ok=false when no section is found.
func References(text string) (string, bool) {
	section, ok := ByPatterns(text, referencesPatterns, constants.ReferencesMaxChars)
	if !ok {
		return "", false
	}

	var refs []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > constants.MinReferenceChars && !isAllDigits(line) {
			refs = append(refs, line)
		}
	}
	if len(refs) > constants.MaxReferences {
		refs = refs[:constants.MaxReferences]
	}
	return strings.Join(refs, "; "), true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
