// Package questionnaire is the top-level entry point: it wires the built-in
// travel question set, the form controller and the step renderers together
// for callers that do not need the individual packages.
package questionnaire

import (
	"context"
	"fmt"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
	"github.com/goliatone/go-questionnaire/pkg/render"
	"github.com/goliatone/go-questionnaire/pkg/renderers/html"
	"github.com/goliatone/go-questionnaire/pkg/renderers/text"
)

// Record aliases form.Record so callers can accept submissions without
// importing pkg/form.
type Record = form.Record

// Sink aliases form.Sink.
type Sink = form.Sink

// SinkFunc aliases form.SinkFunc.
type SinkFunc = form.SinkFunc

// NewTravelForm returns a controller over the built-in travel questionnaire.
func NewTravelForm(options ...form.Option) (*form.Controller, error) {
	return form.New(question.TravelSet(), options...)
}

// LoadQuestions reads a JSON or YAML question set. An empty path yields the
// built-in travel set.
func LoadQuestions(path string) (question.Set, error) {
	if path == "" {
		return question.TravelSet(), nil
	}
	return question.LoadFile(path)
}

// DefaultRegistry returns a registry holding the text and html renderers.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	textRenderer, err := text.New()
	if err != nil {
		return nil, fmt.Errorf("questionnaire: text renderer: %w", err)
	}
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("questionnaire: html renderer: %w", err)
	}
	for _, r := range []render.Renderer{textRenderer, htmlRenderer} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// RenderStep renders the controller's current step with the named renderer
// from the default registry.
func RenderStep(ctx context.Context, ctrl *form.Controller, rendererName string) ([]byte, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Render(ctx, rendererName, render.ViewOf(ctrl))
}
