package render

import (
	"fmt"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
)

const (
	// SentinelLabel is displayed for the unselected entry of a select list.
	SentinelLabel = "Select an option"

	LabelPrevious = "Previous"
	LabelNext     = "Next"
	LabelSubmit   = "Submit"
)

// Choice is one entry of a select or multiselect control.
type Choice struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
	Sentinel bool   `json:"sentinel,omitempty"`
}

// Control is the input affordance for one question.
type Control struct {
	ID          string        `json:"id"`
	Kind        question.Kind `json:"kind"`
	Text        string        `json:"text,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	Choices     []Choice      `json:"choices,omitempty"`
}

// Navigation describes the Previous/Next/Submit affordances.
type Navigation struct {
	PreviousLabel    string `json:"previousLabel"`
	PreviousDisabled bool   `json:"previousDisabled"`
	ForwardLabel     string `json:"forwardLabel"`
	Submit           bool   `json:"submit"`
}

// View is everything a renderer needs to display the current step.
type View struct {
	Title    string              `json:"title"`
	Step     int                 `json:"step"`
	Total    int                 `json:"total"`
	Progress string              `json:"progress"`
	Question question.Descriptor `json:"question"`
	Control  Control             `json:"control"`
	Nav      Navigation          `json:"nav"`
}

// NewControl maps a descriptor and its current answer onto an input
// affordance. It is a pure function of its arguments.
func NewControl(q question.Descriptor, value form.Value) Control {
	ctrl := Control{
		ID:   q.ID,
		Kind: q.Kind,
	}

	switch q.Kind {
	case question.KindText, question.KindMonth:
		ctrl.Text = value.AsText()
		ctrl.Placeholder = q.Placeholder
	case question.KindSelect:
		current := value.AsText()
		ctrl.Choices = make([]Choice, 0, len(q.Options)+1)
		ctrl.Choices = append(ctrl.Choices, Choice{
			Label:    SentinelLabel,
			Value:    "",
			Selected: current == "",
			Sentinel: true,
		})
		for _, option := range q.Options {
			ctrl.Choices = append(ctrl.Choices, Choice{
				Label:    option,
				Value:    option,
				Selected: option == current,
			})
		}
	case question.KindMultiSelect:
		ctrl.Choices = make([]Choice, 0, len(q.Options))
		for _, option := range q.Options {
			ctrl.Choices = append(ctrl.Choices, Choice{
				Label:    option,
				Value:    option,
				Selected: value.Contains(option),
			})
		}
	}
	return ctrl
}

// Progress formats the 1-based position of step within total.
func Progress(step, total int) string {
	return fmt.Sprintf("Question %d of %d", step+1, total)
}

// NewNavigation derives the navigation affordances for step.
func NewNavigation(step, total int) Navigation {
	last := step == total-1
	nav := Navigation{
		PreviousLabel:    LabelPrevious,
		PreviousDisabled: step == 0,
		ForwardLabel:     LabelNext,
		Submit:           last,
	}
	if last {
		nav.ForwardLabel = LabelSubmit
	}
	return nav
}

// BuildView assembles the view for a controller snapshot.
func BuildView(state form.State, title string) View {
	return View{
		Title:    title,
		Step:     state.Step,
		Total:    state.Total,
		Progress: Progress(state.Step, state.Total),
		Question: state.Question,
		Control:  NewControl(state.Question, state.Value),
		Nav:      NewNavigation(state.Step, state.Total),
	}
}

// ViewOf is shorthand for BuildView(ctrl.State(), title of ctrl's set).
func ViewOf(ctrl *form.Controller) View {
	return BuildView(ctrl.State(), ctrl.Questions().Title())
}
