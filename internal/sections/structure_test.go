package sections

import (
	"strings"
	"testing"

	"github.com/mvelkova/docextract/constants"
	"github.com/mvelkova/docextract/internal/normalize"
)

const paperRaw = "ISSN 1234\n\nIntroduction\nThis paper studies X.\n\nMethods\nWe did Y.\n\nResults\nWe found Z.\n\nReferences\n1. Smith et al., 2020, a long citation line over twenty chars.\n"

func TestExtractStructureFromPaper(t *testing.T) {
	clean := normalize.Clean(paperRaw)
	fields := ExtractStructure(clean)

	mustContain := map[string]string{
		constants.FieldIntroduction:   "This paper studies X.",
		constants.FieldThoughts:       "We did Y.",
		constants.FieldAnswers:        "We found Z.",
		constants.FieldFurtherReading: "Smith et al., 2020",
	}
	for field, fragment := range mustContain {
		v, _ := fields[field].(string)
		if !strings.Contains(v, fragment) {
			t.Errorf("%s = %q, want fragment %q", field, v, fragment)
		}
	}

	// Section boundaries: nothing from the references list bleeds into Answers.
	if answers, _ := fields[constants.FieldAnswers].(string); strings.Contains(answers, "Smith") {
		t.Errorf("Answers crossed the references boundary: %q", answers)
	}

	for _, field := range []string{constants.FieldImages, constants.FieldFurtherDevelopment} {
		if fields[field] != nil {
			t.Errorf("%s = %v, want nil", field, fields[field])
		}
	}
}

func TestExtractStructureRequiredNeverNil(t *testing.T) {
	inputs := []string{
		"",
		"lorem ipsum dolor sit amet with no recognizable headers",
		paperRaw,
		normalize.Clean(paperRaw),
	}
	for _, text := range inputs {
		fields := ExtractStructure(text)
		for _, req := range constants.RequiredFields {
			v, ok := fields[req].(string)
			if !ok || v == "" {
				t.Errorf("required field %s = %v for input %q", req, fields[req], text)
			}
		}
	}
}

func TestExtractStructureFallbackSentinels(t *testing.T) {
	fields := ExtractStructure("lorem ipsum dolor sit amet with nothing useful inside")

	want := map[string]string{
		constants.FieldIntroduction: constants.IntroductionFallback,
		constants.FieldThoughts:     constants.ThoughtsFallback,
		constants.FieldAnswers:      constants.AnswersFallback,
	}
	for field, sentinel := range want {
		if fields[field] != sentinel {
			t.Errorf("%s = %v, want sentinel %q", field, fields[field], sentinel)
		}
	}

	for _, field := range []string{constants.FieldFurtherReading, constants.FieldImages, constants.FieldFurtherDevelopment} {
		if fields[field] != nil {
			t.Errorf("%s = %v, want nil", field, fields[field])
		}
	}
}
