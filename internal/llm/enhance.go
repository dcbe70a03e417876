package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/mvelkova/docextract/constants"
	"github.com/mvelkova/docextract/internal/common"
)

// Enhancer folds a model's structured output over the heuristic fields.
// A nil Invoker makes Enhance a passthrough. Enhancement never fails the
// pipeline: on any invocation or decoding error the heuristic mapping is
// returned unchanged.
type Enhancer struct {
	invoker Invoker
	logger  *slog.Logger
}

func NewEnhancer(invoker Invoker, logger *slog.Logger) *Enhancer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enhancer{invoker: invoker, logger: logger}
}

// Enhance invokes the model with the cleaned text and merges its output into a
// copy of fields. Model values win when present, truthy, and not the literal
// string "null"; keys outside the DocumentRecord field set are ignored.
// Returns the (possibly unchanged) mapping and whether a merge was applied.
func (e *Enhancer) Enhance(ctx context.Context, fields map[string]any, cleanText string) (map[string]any, bool) {
	if e.invoker == nil {
		e.logger.Info("llm.enhance.skipped", "reason", "no invoker configured")
		return fields, false
	}

	start := time.Now()
	prompt := BuildEnhancementPrompt(cleanText)
	e.logger.Info("llm.enhance.start", "prompt_bytes", len(prompt), "text_bytes", len(cleanText))

	resp, err := e.invoker.Invoke(ctx, prompt)
	if err != nil {
		e.logger.Warn("llm.enhance.invoke_failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fields, false
	}

	modelFields, err := DecodeObject(resp)
	if err != nil {
		e.logger.Warn("llm.enhance.decode_failed",
			"error", err,
			"response_bytes", len(resp),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fields, false
	}

	merged := maps.Clone(fields)
	applied := 0
	for key, value := range modelFields {
		if !knownField(key) {
			e.logger.Warn("llm.enhance.unknown_key", "key", key)
			continue
		}
		if !truthy(value) || value == "null" {
			continue
		}
		merged[key] = value
		applied++
	}

	e.logger.Info("llm.enhance.ok",
		"fields_applied", applied,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return merged, true
}

// DecodeObject extracts the JSON object embedded in a model response: the
// substring between the first '{' and the last '}', parsed as a generic map.
func DecodeObject(resp string) (map[string]any, error) {
	first := strings.Index(resp, "{")
	last := strings.LastIndex(resp, "}")
	if first == -1 || last == -1 || last < first {
		return nil, fmt.Errorf("%w: no JSON object in model response", common.ErrDecode)
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(resp[first:last+1]), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	return m, nil
}

func knownField(key string) bool {
	if constants.IsRequiredField(key) {
		return true
	}
	for _, f := range constants.OptionalFields {
		if f == key {
			return true
		}
	}
	return false
}

// truthy mirrors the merge rule: empty strings, zeros, false, nulls, and empty
// containers never overwrite a heuristic value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
