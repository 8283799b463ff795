package form

import "github.com/rs/zerolog"

// Observer is notified with a fresh snapshot after every state change. It is
// the redraw hook for whatever displays the form.
type Observer func(State)

// Option configures a Controller.
type Option func(*Controller)

// WithSink replaces the default log sink used by Submit.
func WithSink(sink Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithObserver registers a state observer. Multiple observers run in
// registration order.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithLogger sets the logger used for transition tracing and by the default
// sink.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
		c.loggerSet = true
	}
}
