package render

import "context"

// Renderer converts a step View into a byte representation (plain text,
// HTML, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View) ([]byte, error)
}
