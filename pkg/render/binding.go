package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
)

var (
	// ErrWrongControl is returned when an edit does not match the control kind
	// (for example a toggle on a free-text question).
	ErrWrongControl = errors.New("render: edit does not match control kind")
	// ErrUnknownOption is returned when a choice is not part of the closed list.
	ErrUnknownOption = errors.New("render: unknown option")
)

// Answerer is the slice of form.Controller a binding needs.
type Answerer interface {
	SetAnswer(id string, value form.Value) error
}

// Binding wires user edits on one control back into the controller. Every
// edit produces a full replacement value.
type Binding struct {
	answerer Answerer
	question question.Descriptor
	current  form.Value
}

// Bind creates the edit callbacks for q given its current answer.
func Bind(answerer Answerer, q question.Descriptor, current form.Value) Binding {
	return Binding{
		answerer: answerer,
		question: q,
		current:  current,
	}
}

// BindCurrent binds the controller's current question.
func BindCurrent(ctrl *form.Controller) Binding {
	state := ctrl.State()
	return Bind(ctrl, state.Question, state.Value)
}

// Edit replaces a text or month answer with the full new string.
func (b Binding) Edit(text string) error {
	if b.question.Kind != question.KindText && b.question.Kind != question.KindMonth {
		return fmt.Errorf("%w: edit on %s question %q", ErrWrongControl, b.question.Kind, b.question.ID)
	}
	return b.answerer.SetAnswer(b.question.ID, form.Text(text))
}

// Choose selects one option of a select question. The empty string selects
// the unselected sentinel.
func (b Binding) Choose(option string) error {
	if b.question.Kind != question.KindSelect {
		return fmt.Errorf("%w: choose on %s question %q", ErrWrongControl, b.question.Kind, b.question.ID)
	}
	if option != "" && !containsOption(b.question.Options, option) {
		return fmt.Errorf("%w: %q for %q", ErrUnknownOption, option, b.question.ID)
	}
	return b.answerer.SetAnswer(b.question.ID, form.Text(option))
}

// Toggle switches one multiselect option on (union) or off (difference).
// Options never switch each other off.
func (b Binding) Toggle(option string, on bool) error {
	if b.question.Kind != question.KindMultiSelect {
		return fmt.Errorf("%w: toggle on %s question %q", ErrWrongControl, b.question.Kind, b.question.ID)
	}
	if !containsOption(b.question.Options, option) {
		return fmt.Errorf("%w: %q for %q", ErrUnknownOption, option, b.question.ID)
	}

	current := b.currentValue()
	next := current.Without(option)
	if on {
		next = current.With(option)
	}
	return b.answerer.SetAnswer(b.question.ID, next)
}

type valueReader interface {
	Value(id string) (form.Value, bool)
}

// currentValue prefers the live answer so repeated toggles on one binding
// build on each other.
func (b Binding) currentValue() form.Value {
	if reader, ok := b.answerer.(valueReader); ok {
		if v, ok := reader.Value(b.question.ID); ok {
			return v
		}
	}
	return b.current
}

func containsOption(options []string, option string) bool {
	for _, candidate := range options {
		if candidate == option {
			return true
		}
	}
	return false
}
