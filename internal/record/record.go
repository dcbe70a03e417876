// Package record owns the DocumentRecord data model: schema validation of the
// merged field mapping and JSON persistence of the final record.
package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mvelkova/docextract/constants"
	"github.com/mvelkova/docextract/internal/common"
)

// DocumentRecord is the validated output of the pipeline. Required fields are
// plain strings; optional fields are nullable and serialized as null when
// absent, matching the established output format. A record is never mutated
// after construction.
type DocumentRecord struct {
	Document     string `json:"document"`
	Introduction string `json:"Introduction"`
	Thoughts     string `json:"Thoughts"`
	Answers      string `json:"Answers"`

	Hallmarks          *string `json:"Hallmarks"`
	FurtherReading     *string `json:"Further_Reading"`
	Images             *string `json:"Images"`
	FurtherDevelopment *string `json:"Further_Development"`
	ThoughtsI          *string `json:"Thoughts_I"`
	AnswersI           *string `json:"Answers_I"`
	AnswersII          *string `json:"Answers_II"`
	FurtherThoughts    *string `json:"Further_Thoughts"`
	Ependymoma         *string `json:"Ependymoma"`
}

// FromFields constructs a validated DocumentRecord from the merged mapping.
// This is the single hard boundary of the pipeline: everything upstream is
// advisory, a failure here is fatal. The returned error names every required
// field that is missing or not a string.
func FromFields(fields map[string]any) (*DocumentRecord, error) {
	var bad []string
	for _, name := range constants.RequiredFields {
		v, ok := fields[name]
		if !ok || v == nil {
			bad = append(bad, name+" (missing)")
			continue
		}
		if _, isStr := v.(string); !isStr {
			bad = append(bad, name+" (not a string)")
		}
	}
	if len(bad) > 0 {
		return nil, common.NewAppError("SCHEMA_ERROR",
			fmt.Sprintf("required fields invalid: %s", strings.Join(bad, ", ")),
			common.ErrValidation)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(), raw); err != nil {
		return nil, common.NewAppError("SCHEMA_ERROR", "record does not match schema", err)
	}

	var rec DocumentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &rec, nil
}
