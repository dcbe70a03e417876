package constants

// Ordered start patterns for each labeled section; earlier entries win.
// Matched case-insensitively against a lowercased copy of the cleaned text.
var (
	IntroductionPatterns       = []string{`\bintroduction\b`, `\babstract\b`, `\bsummary\b`, `\bbackground\b`}
	ThoughtsPatterns           = []string{`\bmethods\b`, `\bmethodology\b`, `\bapproach\b`, `\bdiscussion\b`}
	AnswersPatterns            = []string{`\bresults\b`, `\bfindings\b`, `\bconclusion\b`, `\boutcome\b`}
	FurtherDevelopmentPatterns = []string{`\blimitations\b`, `\bfuture work\b`, `\bfuture research\b`}
	ReferencesPatterns         = []string{`\breferences\b`, `\bbibliography\b`, `\bcitations\b`}
)

// Section length caps, in characters of the original-casing slice.
const (
	SectionMaxChars            = 1500
	FurtherDevelopmentMaxChars = 1000
	ReferencesMaxChars         = 1500
)

// TitleSkipMarkers disqualify a line from being the document title.
var TitleSkipMarkers = []string{"issn", "doi", "©", "page", "volume"}

// TitleScanLines and TitleMinLength bound the title search window.
const (
	TitleScanLines = 20
	TitleMinLength = 10
)

// Limits on list-shaped extractions.
const (
	MaxReferences     = 5
	MinReferenceChars = 20
	MaxFigureMentions = 10
)
