package constants

// Canonical DocumentRecord field names. These exact strings are the JSON keys,
// the schema property names, and the keys the LLM is asked to return.
const (
	FieldDocument           = "document"
	FieldIntroduction       = "Introduction"
	FieldThoughts           = "Thoughts"
	FieldAnswers            = "Answers"
	FieldHallmarks          = "Hallmarks"
	FieldFurtherReading     = "Further_Reading"
	FieldImages             = "Images"
	FieldFurtherDevelopment = "Further_Development"
	FieldThoughtsI          = "Thoughts_I"
	FieldAnswersI           = "Answers_I"
	FieldAnswersII          = "Answers_II"
	FieldFurtherThoughts    = "Further_Thoughts"
	FieldEpendymoma         = "Ependymoma"
)

// RequiredFields must be non-empty strings for a record to validate.
var RequiredFields = []string{
	FieldDocument,
	FieldIntroduction,
	FieldThoughts,
	FieldAnswers,
}

// OptionalFields may be absent (null) indefinitely.
var OptionalFields = []string{
	FieldHallmarks,
	FieldFurtherReading,
	FieldImages,
	FieldFurtherDevelopment,
	FieldThoughtsI,
	FieldAnswersI,
	FieldAnswersII,
	FieldFurtherThoughts,
	FieldEpendymoma,
}

// FieldDescriptions is what each field means; embedded into the enhancement prompt.
var FieldDescriptions = map[string]string{
	FieldDocument:           "Document title or identifier",
	FieldIntroduction:       "Introduction or summary of the document",
	FieldThoughts:           "Main thoughts, insights, methodology",
	FieldAnswers:            "Key findings, results, conclusions",
	FieldHallmarks:          "Key hallmarks or characteristics",
	FieldFurtherReading:     "References or recommended reading",
	FieldImages:             "Description of relevant figures, tables or images",
	FieldFurtherDevelopment: "Future work, limitations, next steps",
	FieldThoughtsI:          "Additional thoughts - Part I",
	FieldAnswersI:           "Additional answers - Part I",
	FieldAnswersII:          "Additional answers - Part II",
	FieldFurtherThoughts:    "Further thoughts and considerations",
	FieldEpendymoma:         "Ependymoma-related information",
}

// Fallback sentinels for required fields when no heuristic matches.
const (
	TitleNotFound        = "Document title not found"
	IntroductionFallback = "Introduction section not found in document"
	ThoughtsFallback     = "Methods/Discussion section not found in document"
	AnswersFallback      = "Results/Conclusions section not found in document"
)

// IsRequiredField reports whether name is one of the four required fields.
func IsRequiredField(name string) bool {
	for _, f := range RequiredFields {
		if f == name {
			return true
		}
	}
	return false
}
