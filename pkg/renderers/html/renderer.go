package html

import (
	"context"
	"embed"
	"errors"
	"io/fs"

	"github.com/goliatone/go-questionnaire/pkg/render"
	"github.com/goliatone/go-questionnaire/pkg/render/template"
	"github.com/goliatone/go-questionnaire/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const stepTemplate = "step"

// Option configures the HTML renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the embedded templates. The filesystem must
// provide step.tpl.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// WithTemplateRenderer injects a pre-built template engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// Renderer draws one step as an HTML fragment with native inputs (text,
// month, select, checkboxes). Values are autoescaped.
type Renderer struct {
	templates fs.FS
	engine    template.TemplateRenderer
}

// New constructs an HTML renderer backed by the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		if r.templates == nil {
			sub, err := fs.Sub(embeddedTemplates, "templates")
			if err != nil {
				return nil, err
			}
			r.templates = sub
		}
		engine, err := pongo.New(pongo.WithName("html"), pongo.WithFS(r.templates))
		if err != nil {
			return nil, err
		}
		r.engine = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws view.
func (r *Renderer) Render(ctx context.Context, view render.View) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.engine.RenderTemplate(stepTemplate, view)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
