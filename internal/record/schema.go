package record

import (
	"github.com/mvelkova/docextract/constants"
)

// BuildDocumentJSONSchema returns the DocumentRecord schema (draft 2020-12
// subset) as a generic map: four required non-empty strings, nine nullable
// optional strings, nothing else.
func BuildDocumentJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.RequiredFields)+len(constants.OptionalFields))
	for _, name := range constants.RequiredFields {
		props[name] = map[string]any{"type": "string", "minLength": 1}
	}
	for _, name := range constants.OptionalFields {
		props[name] = map[string]any{"type": []string{"string", "null"}}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             constants.RequiredFields,
	}
}
