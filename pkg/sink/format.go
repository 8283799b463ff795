package sink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-questionnaire/pkg/form"
)

// Format selects how a record is serialized.
type Format string

const (
	FormatJSON   Format = "json"
	FormatForm   Format = "form"
	FormatPretty Format = "pretty"
)

// ErrUnknownFormat is returned for format names other than json, form and pretty.
var ErrUnknownFormat = errors.New("sink: unknown output format")

// ParseFormat normalises a user supplied format name. Empty means JSON.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatForm, "urlencoded":
		return FormatForm, nil
	case FormatPretty, "text":
		return FormatPretty, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType reports the MIME type of the encoded output.
func (f Format) ContentType() string {
	switch f {
	case FormatForm:
		return "application/x-www-form-urlencoded"
	case FormatPretty:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Encode serializes record. JSON keeps question order; form output uses
// url.Values ordering (sorted keys) with sets encoded as repeated id[] pairs;
// pretty output is one id=value line per answer in question order.
func Encode(record form.Record, format Format) ([]byte, error) {
	switch format {
	case FormatForm:
		return []byte(flattenForm(record)), nil
	case FormatPretty:
		return []byte(prettyPrint(record)), nil
	case FormatJSON, "":
		return record.MarshalJSON()
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func flattenForm(record form.Record) string {
	values := url.Values{}
	for _, id := range record.IDs() {
		v, _ := record.Get(id)
		if !v.IsSelection() {
			values.Set(id, v.AsText())
			continue
		}
		for _, option := range v.Selected() {
			values.Add(id+"[]", option)
		}
	}
	return values.Encode()
}

func prettyPrint(record form.Record) string {
	var b strings.Builder
	for _, id := range record.IDs() {
		v, _ := record.Get(id)
		if !v.IsSelection() {
			fmt.Fprintf(&b, "%s=%s\n", id, v.AsText())
			continue
		}
		selected := v.Selected()
		if len(selected) == 0 {
			fmt.Fprintf(&b, "%s=\n", id)
			continue
		}
		for idx, option := range selected {
			fmt.Fprintf(&b, "%s[%d]=%s\n", id, idx, option)
		}
	}
	return b.String()
}
