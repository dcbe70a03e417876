package llm

import (
	"strings"

	"github.com/mvelkova/docextract/constants"
)

// BuildEnhancementPrompt composes the fixed-template prompt: field roster with
// descriptions, the full cleaned document text, and strict JSON-only framing.
func BuildEnhancementPrompt(cleanText string) string {
	var b strings.Builder

	b.WriteString("Analyze this document and extract information in JSON format. Return ONLY valid JSON.\n\n")

	b.WriteString("Required fields:\n")
	for _, name := range constants.RequiredFields {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(constants.FieldDescriptions[name])
		b.WriteString("\n")
	}

	b.WriteString("\nOptional fields (use null if not found):\n")
	for _, name := range constants.OptionalFields {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(constants.FieldDescriptions[name])
		b.WriteString("\n")
	}

	b.WriteString("\nDocument text:\n")
	b.WriteString(cleanText)
	b.WriteString("\n\nReturn only the JSON object:\n")

	return b.String()
}
