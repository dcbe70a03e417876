package sections

import (
	"regexp"
	"strings"

	"github.com/mvelkova/docextract/constants"
)

// figurePatterns are applied to the whole text, not a delimited section: a
// figure caption can appear anywhere. Each match runs to the next period.
var figurePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Figure \d+[:.][^.]*\.`),
	regexp.MustCompile(`(?i)Fig\. \d+[:.][^.]*\.`),
	regexp.MustCompile(`(?i)Table \d+[:.][^.]*\.`),
	regexp.MustCompile(`(?i)Image \d+[:.][^.]*\.`),
}

// Figures collects figure/table/image mentions across the entire text, in
// pattern order then match order, capped at MaxFigureMentions and joined with
// "; ". Returns ok=false when there are no matches at all.
func Figures(text string) (string, bool) {
	var mentions []string
	for _, pat := range figurePatterns {
		mentions = append(mentions, pat.FindAllString(text, -1)...)
	}
	if len(mentions) == 0 {
		return "", false
	}
	if len(mentions) > constants.MaxFigureMentions {
		mentions = mentions[:constants.MaxFigureMentions]
	}
	return strings.Join(mentions, "; "), true
}
