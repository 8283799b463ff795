package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
)

// MonthPattern accepts an empty string or a YYYY-MM month.
const MonthPattern = `^(\d{4}-(0[1-9]|1[0-2]))?$`

var (
	// ErrInvalidAnswers wraps every validation failure.
	ErrInvalidAnswers = errors.New("schema: answers do not match questionnaire")
	// ErrMalformedPayload is returned when the payload is not a JSON object.
	ErrMalformedPayload = errors.New("schema: malformed answer payload")
)

// FromQuestions describes the answer record of set as an OpenAPI 3 object
// schema. Every question id is required and unknown keys are rejected. The
// empty string is a valid answer for every single-value question.
func FromQuestions(set question.Set) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	root.Title = set.Title()
	root.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}

	for _, q := range set.Questions() {
		root.WithProperty(q.ID, propertyFor(q))
		root.Required = append(root.Required, q.ID)
	}
	return root
}

func propertyFor(q question.Descriptor) *openapi3.Schema {
	var prop *openapi3.Schema
	switch q.Kind {
	case question.KindMonth:
		prop = openapi3.NewStringSchema().WithPattern(MonthPattern)
	case question.KindSelect:
		prop = openapi3.NewStringSchema().WithEnum(enumOf(append([]string{""}, q.Options...))...)
	case question.KindMultiSelect:
		items := openapi3.NewStringSchema().WithEnum(enumOf(q.Options)...)
		prop = openapi3.NewArraySchema().WithItems(items).WithUniqueItems(true)
	default:
		prop = openapi3.NewStringSchema()
	}
	prop.Description = q.Prompt
	return prop
}

func enumOf(options []string) []any {
	out := make([]any, len(options))
	for i, option := range options {
		out[i] = option
	}
	return out
}

// ValidateRecord checks a record against schema.
func ValidateRecord(s *openapi3.Schema, record form.Record) error {
	return validate(s, record.Map())
}

// Validate decodes a JSON answer payload and checks it against schema. All
// violations are reported, not just the first.
func Validate(s *openapi3.Schema, payload []byte) error {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return fmt.Errorf("%w: expected a JSON object", ErrMalformedPayload)
	}
	return validate(s, doc)
}

func validate(s *openapi3.Schema, doc any) error {
	if s == nil {
		return errors.New("schema: nil schema")
	}
	if err := s.VisitJSON(doc, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}
	return nil
}

// Marshal renders schema as indented JSON.
func Marshal(s *openapi3.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
