package tui

import "github.com/rs/zerolog"

// DefaultBackKeyword is the text answer that steps back instead of answering.
const DefaultBackKeyword = "<"

// Theme captures optional prefixes the runner applies to driver messages.
// Keep minimal to avoid coupling runner logic to ANSI specifics.
type Theme struct {
	TitlePrefix    string
	ProgressPrefix string
	ErrorPrefix    string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver (survey by default).
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithBackKeyword sets the text answer that means "previous question". An
// empty keyword disables the shortcut; select lists and the navigation menu
// still offer Previous.
func WithBackKeyword(keyword string) Option {
	return func(r *Renderer) {
		r.backKeyword = keyword
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger traces prompt activity.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}
