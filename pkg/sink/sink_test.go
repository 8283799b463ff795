package sink_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
	"github.com/goliatone/go-questionnaire/pkg/sink"
)

var trip = question.MustSet("Trip",
	question.Descriptor{ID: "city", Prompt: "City?", Kind: question.KindText},
	question.Descriptor{ID: "size", Prompt: "Size?", Kind: question.KindSelect, Options: []string{"S", "M"}},
	question.Descriptor{ID: "tags", Prompt: "Tags?", Kind: question.KindMultiSelect, Options: []string{"a", "b"}},
)

func submit(t *testing.T, s form.Sink, city string) {
	t.Helper()
	ctrl, err := form.New(trip, form.WithLogger(zerolog.Nop()), form.WithSink(s))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := ctrl.SetAnswer("city", form.Text(city)); err != nil {
		t.Fatalf("city: %v", err)
	}
	if err := ctrl.SetAnswer("tags", form.Selection("a", "b")); err != nil {
		t.Fatalf("tags: %v", err)
	}
	ctrl.Submit()
}

func TestWriter_Formats(t *testing.T) {
	cases := []struct {
		format sink.Format
		want   string
	}{
		{sink.FormatJSON, `{"city":"Paris","size":"","tags":["a","b"]}` + "\n"},
		{sink.FormatForm, "city=Paris&size=&tags%5B%5D=a&tags%5B%5D=b\n"},
		{sink.FormatPretty, "city=Paris\nsize=\ntags[0]=a\ntags[1]=b\n"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			var buf bytes.Buffer
			submit(t, sink.Writer(&buf, tc.format), "Paris")
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_EmptySetPretty(t *testing.T) {
	rec := form.NewRecord(trip)
	out, err := sink.Encode(rec, sink.FormatPretty)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if diff := cmp.Diff("city=\nsize=\ntags=\n", string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if _, err := sink.Encode(rec, sink.Format("xml")); !errors.Is(err, sink.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_LogsWriteFailure(t *testing.T) {
	var logs bytes.Buffer
	submit(t, sink.Writer(failingWriter{}, sink.FormatJSON, sink.WithLogger(zerolog.New(&logs))), "Paris")
	if !strings.Contains(logs.String(), "write answers") || !strings.Contains(logs.String(), "disk full") {
		t.Fatalf("expected logged failure, got %q", logs.String())
	}
}

func TestMulti_FansOutInOrder(t *testing.T) {
	var order []string
	record := func(name string) form.Sink {
		return form.SinkFunc(func(form.Record) { order = append(order, name) })
	}
	submit(t, sink.Multi(record("first"), nil, record("second")), "Paris")
	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitize_StripsMarkupKeepsText(t *testing.T) {
	var got form.Record
	capture := form.SinkFunc(func(r form.Record) { got = r })

	submit(t, sink.Sanitize(capture), `<b onclick="x()">Food & Dining</b>`)

	if got.Text("city") != "Food & Dining" {
		t.Fatalf("city = %q", got.Text("city"))
	}
	if diff := cmp.Diff([]string{"a", "b"}, got.Selected("tags")); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]sink.Format{
		"":       sink.FormatJSON,
		"JSON":   sink.FormatJSON,
		" form ": sink.FormatForm,
		"pretty": sink.FormatPretty,
		"text":   sink.FormatPretty,
	} {
		got, err := sink.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := sink.ParseFormat("yaml"); !errors.Is(err, sink.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if sink.FormatForm.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type %q", sink.FormatForm.ContentType())
	}
}

func TestSanitize_EncodedMarkupAndPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "entity encoded script", in: "&lt;script&gt;alert(1)&lt;/script&gt;", want: ""},
		{name: "double encoded tag", in: "<i>x</i>&amp;lt;b&amp;gt;bold&amp;lt;/b&amp;gt;", want: "xbold"},
		{name: "lone angle bracket", in: "a<b", want: "a<b"},
		{name: "comparison", in: "budget < 3000 > 1000", want: "budget < 3000 > 1000"},
		{name: "literal entity", in: "AT&amp;T", want: "AT&amp;T"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got form.Record
			submit(t, sink.Sanitize(form.SinkFunc(func(r form.Record) { got = r })), tc.in)

			if city := got.Text("city"); city != tc.want {
				t.Fatalf("city = %q, want %q", city, tc.want)
			}
		})
	}
}
