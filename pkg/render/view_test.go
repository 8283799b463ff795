package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
	"github.com/goliatone/go-questionnaire/pkg/render"
)

func newController(t *testing.T) *form.Controller {
	t.Helper()
	ctrl, err := form.New(question.TravelSet(), form.WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return ctrl
}

func TestNewControl_Text(t *testing.T) {
	q, _, _ := question.TravelSet().Lookup(question.IDDestination)

	got := render.NewControl(q, form.Text("Paris"))
	want := render.Control{
		ID:          "destination",
		Kind:        question.KindText,
		Text:        "Paris",
		Placeholder: "Enter city or country",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("control mismatch (-want +got):\n%s", diff)
	}
}

func TestNewControl_SelectHasSentinel(t *testing.T) {
	q, _, _ := question.TravelSet().Lookup(question.IDGroupSize)

	unanswered := render.NewControl(q, form.Text(""))
	if len(unanswered.Choices) != len(q.Options)+1 {
		t.Fatalf("expected sentinel plus %d options, got %d", len(q.Options), len(unanswered.Choices))
	}
	if first := unanswered.Choices[0]; !first.Sentinel || !first.Selected || first.Value != "" || first.Label != render.SentinelLabel {
		t.Fatalf("unexpected sentinel %+v", first)
	}

	answered := render.NewControl(q, form.Text("Couple"))
	var selected []string
	for _, choice := range answered.Choices {
		if choice.Selected {
			selected = append(selected, choice.Value)
		}
	}
	if diff := cmp.Diff([]string{"Couple"}, selected); diff != "" {
		t.Fatalf("selected mismatch (-want +got):\n%s", diff)
	}
}

func TestNewControl_MultiSelect(t *testing.T) {
	q, _, _ := question.TravelSet().Lookup(question.IDInterests)

	got := render.NewControl(q, form.Selection("Beaches", "Museums"))
	want := []render.Choice{
		{Label: "Sightseeing", Value: "Sightseeing"},
		{Label: "Museums", Value: "Museums", Selected: true},
		{Label: "Shopping", Value: "Shopping"},
		{Label: "Outdoor Activities", Value: "Outdoor Activities"},
		{Label: "Local Cuisine", Value: "Local Cuisine"},
		{Label: "Beaches", Value: "Beaches", Selected: true},
	}
	if diff := cmp.Diff(want, got.Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildView_ProgressAndNavigation(t *testing.T) {
	ctrl := newController(t)

	first := render.ViewOf(ctrl)
	if first.Progress != "Question 1 of 10" {
		t.Fatalf("unexpected progress %q", first.Progress)
	}
	if !first.Nav.PreviousDisabled || first.Nav.ForwardLabel != render.LabelNext || first.Nav.Submit {
		t.Fatalf("unexpected first-step navigation %+v", first.Nav)
	}
	if first.Title != question.TravelTitle {
		t.Fatalf("unexpected title %q", first.Title)
	}

	ctrl.GoNext()
	middle := render.ViewOf(ctrl)
	if middle.Nav.PreviousDisabled || middle.Progress != "Question 2 of 10" {
		t.Fatalf("unexpected middle view %+v", middle.Nav)
	}

	for ctrl.Step() < ctrl.Total()-1 {
		ctrl.GoNext()
	}
	last := render.ViewOf(ctrl)
	if !last.Nav.Submit || last.Nav.ForwardLabel != render.LabelSubmit || last.Progress != "Question 10 of 10" {
		t.Fatalf("unexpected last view %+v (%s)", last.Nav, last.Progress)
	}
}
