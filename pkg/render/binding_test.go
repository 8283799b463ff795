package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
	"github.com/goliatone/go-questionnaire/pkg/render"
)

type recordingAnswerer struct {
	ids    []string
	values []form.Value
}

func (r *recordingAnswerer) SetAnswer(id string, v form.Value) error {
	r.ids = append(r.ids, id)
	r.values = append(r.values, v)
	return nil
}

func TestBinding_EditIsFullReplacement(t *testing.T) {
	q, _, _ := question.TravelSet().Lookup(question.IDDestination)
	rec := &recordingAnswerer{}
	b := render.Bind(rec, q, form.Text("Par"))

	if err := b.Edit("Paris"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if len(rec.values) != 1 || rec.values[0].AsText() != "Paris" {
		t.Fatalf("expected full replacement value, got %+v", rec.values)
	}
}

func TestBinding_ChooseClosedList(t *testing.T) {
	q, _, _ := question.TravelSet().Lookup(question.IDDuration)
	rec := &recordingAnswerer{}
	b := render.Bind(rec, q, form.Text(""))

	if err := b.Choose("1 week"); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if err := b.Choose(""); err != nil {
		t.Fatalf("choose sentinel: %v", err)
	}
	if err := b.Choose("3 years"); !errors.Is(err, render.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if err := b.Edit("1 week"); !errors.Is(err, render.ErrWrongControl) {
		t.Fatalf("expected ErrWrongControl, got %v", err)
	}
	if len(rec.values) != 2 || rec.values[1].AsText() != "" {
		t.Fatalf("unexpected answers %+v", rec.values)
	}
}

func TestBinding_ToggleAgainstController(t *testing.T) {
	ctrl := newController(t)
	for ctrl.Current().ID != question.IDTripPurpose {
		ctrl.GoNext()
	}
	step := ctrl.Step()
	b := render.BindCurrent(ctrl)

	steps := []struct {
		option string
		on     bool
	}{
		{"Adventure", true},
		{"Food & Dining", true},
		{"Nightlife", false},
		{"Adventure", false},
		{"Adventure", true},
	}
	for _, s := range steps {
		if err := b.Toggle(s.option, s.on); err != nil {
			t.Fatalf("toggle %s=%v: %v", s.option, s.on, err)
		}
	}

	got, _ := ctrl.Value(question.IDTripPurpose)
	if !got.Equal(form.Selection("Adventure", "Food & Dining")) {
		t.Fatalf("unexpected selection %v", got.Selected())
	}
	if ctrl.Step() != step {
		t.Fatalf("toggles must not advance the step")
	}

	if err := b.Toggle("Skydiving", true); !errors.Is(err, render.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if err := b.Choose("Adventure"); !errors.Is(err, render.ErrWrongControl) {
		t.Fatalf("expected ErrWrongControl, got %v", err)
	}
}

type fixedRenderer struct{ name string }

func (f fixedRenderer) Name() string        { return f.name }
func (f fixedRenderer) ContentType() string { return "text/plain" }
func (f fixedRenderer) Render(_ context.Context, view render.View) ([]byte, error) {
	return []byte(f.name + ":" + view.Progress), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(fixedRenderer{name: "b"})
	reg.MustRegister(fixedRenderer{name: "a"})

	if err := reg.Register(fixedRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if diff := cmp.Diff([]string{"a", "b"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	out, err := reg.Render(context.Background(), "a", render.View{Progress: "Question 1 of 1"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "a:Question 1 of 1" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := reg.Get("missing"); err == nil || !reg.Has("a") {
		t.Fatalf("lookup semantics broken")
	}
}
