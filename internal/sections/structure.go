package sections

import (
	"github.com/mvelkova/docextract/constants"
)

var (
	introductionPatterns       = compileAll(constants.IntroductionPatterns)
	thoughtsPatterns           = compileAll(constants.ThoughtsPatterns)
	answersPatterns            = compileAll(constants.AnswersPatterns)
	furtherDevelopmentPatterns = compileAll(constants.FurtherDevelopmentPatterns)
)

// ExtractStructure runs every heuristic over the cleaned text and assembles
// the field mapping. Required fields are never nil here: when a section is not
// found they carry their fallback sentinel. Optional fields stay nil when the
// heuristics come up empty.
func ExtractStructure(cleanText string) map[string]any {
	fields := make(map[string]any, 8)

	fields[constants.FieldDocument] = Title(cleanText)

	if intro, ok := ByPatterns(cleanText, introductionPatterns, constants.SectionMaxChars); ok {
		fields[constants.FieldIntroduction] = intro
	} else {
		fields[constants.FieldIntroduction] = constants.IntroductionFallback
	}

	if thoughts, ok := ByPatterns(cleanText, thoughtsPatterns, constants.SectionMaxChars); ok {
		fields[constants.FieldThoughts] = thoughts
	} else {
		fields[constants.FieldThoughts] = constants.ThoughtsFallback
	}

	if answers, ok := ByPatterns(cleanText, answersPatterns, constants.SectionMaxChars); ok {
		fields[constants.FieldAnswers] = answers
	} else {
		fields[constants.FieldAnswers] = constants.AnswersFallback
	}

	if refs, ok := References(cleanText); ok {
		fields[constants.FieldFurtherReading] = refs
	} else {
		fields[constants.FieldFurtherReading] = nil
	}

	if figs, ok := Figures(cleanText); ok {
		fields[constants.FieldImages] = figs
	} else {
		fields[constants.FieldImages] = nil
	}

	if fd, ok := ByPatterns(cleanText, furtherDevelopmentPatterns, constants.FurtherDevelopmentMaxChars); ok {
		fields[constants.FieldFurtherDevelopment] = fd
	} else {
		fields[constants.FieldFurtherDevelopment] = nil
	}

	return fields
}
