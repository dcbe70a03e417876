package llm

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mvelkova/docextract/constants"
)

type fakeInvoker struct {
	resp string
	err  error

	gotPrompt string
}

func (f *fakeInvoker) Invoke(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.resp, f.err
}

func heuristicFields() map[string]any {
	return map[string]any{
		constants.FieldDocument:           "Heuristic Title",
		constants.FieldIntroduction:       "Heuristic intro",
		constants.FieldThoughts:           "Heuristic thoughts",
		constants.FieldAnswers:            "Heuristic answers",
		constants.FieldFurtherReading:     nil,
		constants.FieldImages:             nil,
		constants.FieldFurtherDevelopment: nil,
	}
}

func TestEnhanceWithoutInvokerIsPassthrough(t *testing.T) {
	e := NewEnhancer(nil, nil)
	fields := heuristicFields()

	got, applied := e.Enhance(context.Background(), fields, "clean text")
	if applied {
		t.Error("applied = true without an invoker")
	}
	if !reflect.DeepEqual(got, fields) {
		t.Errorf("fields changed: %v", got)
	}
}

func TestEnhanceMergeRules(t *testing.T) {
	inv := &fakeInvoker{resp: `Here is the extraction you asked for:
{"document": "Model Title", "Hallmarks": "Key hallmark", "Answers": "null", "Images": "", "Thoughts": 0, "Bogus_Key": "x"}
Let me know if you need anything else.`}
	e := NewEnhancer(inv, nil)
	fields := heuristicFields()

	got, applied := e.Enhance(context.Background(), fields, "clean text")
	if !applied {
		t.Fatal("applied = false")
	}

	if got[constants.FieldDocument] != "Model Title" {
		t.Errorf("document = %v, want model value", got[constants.FieldDocument])
	}
	if got[constants.FieldHallmarks] != "Key hallmark" {
		t.Errorf("Hallmarks = %v", got[constants.FieldHallmarks])
	}
	// The literal string "null" never wins.
	if got[constants.FieldAnswers] != "Heuristic answers" {
		t.Errorf("Answers = %v, want heuristic value", got[constants.FieldAnswers])
	}
	// Falsy values never win.
	if got[constants.FieldImages] != nil {
		t.Errorf("Images = %v, want nil", got[constants.FieldImages])
	}
	if got[constants.FieldThoughts] != "Heuristic thoughts" {
		t.Errorf("Thoughts = %v, want heuristic value", got[constants.FieldThoughts])
	}
	// Keys outside the record schema are dropped.
	if _, ok := got["Bogus_Key"]; ok {
		t.Error("unknown key merged into fields")
	}
	// The input mapping is never mutated.
	if fields[constants.FieldDocument] != "Heuristic Title" {
		t.Errorf("input mapping mutated: %v", fields[constants.FieldDocument])
	}
}

func TestEnhancePromptEmbedsTextAndFields(t *testing.T) {
	inv := &fakeInvoker{resp: `{}`}
	e := NewEnhancer(inv, nil)
	e.Enhance(context.Background(), heuristicFields(), "the cleaned document body")

	if !strings.Contains(inv.gotPrompt, "the cleaned document body") {
		t.Error("prompt does not embed the cleaned text")
	}
	for _, name := range constants.RequiredFields {
		if !strings.Contains(inv.gotPrompt, name) {
			t.Errorf("prompt missing required field %s", name)
		}
	}
	for _, name := range constants.OptionalFields {
		if !strings.Contains(inv.gotPrompt, name) {
			t.Errorf("prompt missing optional field %s", name)
		}
	}
}

func TestEnhanceDegradesGracefully(t *testing.T) {
	cases := map[string]*fakeInvoker{
		"invoke error": {err: errors.New("rate limited")},
		"no braces":    {resp: "sorry, I cannot help with that"},
		"bad json":     {resp: `{"document": unterminated`},
	}
	for name, inv := range cases {
		t.Run(name, func(t *testing.T) {
			e := NewEnhancer(inv, nil)
			fields := heuristicFields()

			got, applied := e.Enhance(context.Background(), fields, "text")
			if applied {
				t.Error("applied = true on failure")
			}
			if !reflect.DeepEqual(got, fields) {
				t.Errorf("fields changed on failure: %v", got)
			}
		})
	}
}

func TestDecodeObjectExtractsBracedJSON(t *testing.T) {
	m, err := DecodeObject(`prose before {"a": "b"} prose after`)
	if err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}
	if m["a"] != "b" {
		t.Errorf("m = %v", m)
	}
}

func TestDecodeObjectErrors(t *testing.T) {
	for _, s := range []string{"", "no json here", "} reversed {", `{"broken": `} {
		if _, err := DecodeObject(s); err == nil {
			t.Errorf("DecodeObject(%q) succeeded, want error", s)
		}
	}
}
