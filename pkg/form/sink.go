package form

import "github.com/rs/zerolog"

// Sink receives the full answer record on submit. Sinks cannot fail the
// submission; implementations handle and report their own errors.
type Sink interface {
	Accept(record Record)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Record)

// Accept calls fn(record).
func (fn SinkFunc) Accept(record Record) {
	if fn != nil {
		fn(record)
	}
}

// LogSink returns the diagnostic sink: it logs the record at info level.
func LogSink(logger zerolog.Logger) Sink {
	return SinkFunc(func(record Record) {
		logger.Info().Interface("answers", record).Msg("final answers")
	})
}
