// Package sink provides form.Sink implementations: serializing writers,
// fan-out and markup sanitizing.
package sink
