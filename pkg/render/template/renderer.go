package template

import (
	"io"
)

// TemplateRenderer is the seam the text, HTML and prompt renderers rely on.
// Implementations render either named templates or inline template strings
// and mirror the result to any writers supplied.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
