package sink

import (
	"html"
	"io"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-questionnaire/pkg/form"
)

// Option configures the sinks in this package.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger reports encode and write failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Writer returns a sink that encodes each submitted record to w. Sinks cannot
// fail a submission, so errors are logged and dropped.
func Writer(w io.Writer, format Format, opts ...Option) form.Sink {
	o := buildOptions(opts)
	return form.SinkFunc(func(record form.Record) {
		payload, err := Encode(record, format)
		if err != nil {
			o.logger.Error().Err(err).Str("format", string(format)).Msg("encode answers")
			return
		}
		if format == FormatJSON || format == FormatForm {
			payload = append(payload, '\n')
		}
		if _, err := w.Write(payload); err != nil {
			o.logger.Error().Err(err).Str("format", string(format)).Msg("write answers")
			return
		}
		o.logger.Debug().Str("format", string(format)).Int("bytes", len(payload)).Msg("answers written")
	})
}

// Multi forwards every record to each sink in order. Nil sinks are skipped.
func Multi(sinks ...form.Sink) form.Sink {
	return form.SinkFunc(func(record form.Record) {
		for _, s := range sinks {
			if s != nil {
				s.Accept(record)
			}
		}
	})
}

// markupPattern matches a complete tag, comment or directive. A lone "<" in
// plain text such as "a<b" is not markup.
var markupPattern = regexp.MustCompile(`<[a-zA-Z/!?][^<>]*>`)

const maxSanitizePasses = 8

// Sanitize strips markup from every answer before forwarding to next.
// Answers without markup, even once entities are decoded, pass through
// untouched. Everything else is decoded and run through a strict bluemonday
// policy until no markup is left, so plain characters such as "&" survive
// while tags, including entity-encoded ones, do not.
func Sanitize(next form.Sink, opts ...Option) form.Sink {
	o := buildOptions(opts)
	policy := bluemonday.StrictPolicy()
	return form.SinkFunc(func(record form.Record) {
		if next == nil {
			return
		}
		cleaned := record.MapStrings(func(id, s string) string {
			out := stripMarkup(policy, s)
			if out != s {
				o.logger.Debug().Str("question", id).Msg("answer sanitized")
			}
			return out
		})
		next.Accept(cleaned)
	})
}

func stripMarkup(policy *bluemonday.Policy, s string) string {
	out := html.UnescapeString(s)
	if !markupPattern.MatchString(s) && !markupPattern.MatchString(out) {
		return s
	}
	for range maxSanitizePasses {
		if !markupPattern.MatchString(out) {
			return out
		}
		out = html.UnescapeString(policy.Sanitize(out))
	}
	// Nested encodings deeper than the pass limit stay escaped.
	return policy.Sanitize(out)
}
