package tui

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
	"github.com/goliatone/go-questionnaire/pkg/render"
)

const (
	labelChange   = "Change answer"
	labelBack     = "« " + render.LabelPrevious
	navMessage    = "What next?"
	monthHelpText = "Format YYYY-MM, leave empty to skip"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Renderer drives a form.Controller from the terminal. It prompts for the
// current question, feeds the answer back through render bindings and keeps
// going until the user submits.
type Renderer struct {
	driver      PromptDriver
	backKeyword string
	theme       Theme
	logger      zerolog.Logger
}

// New constructs a TUI runner with defaults (survey driver, "<" back keyword).
func New(options ...Option) *Renderer {
	r := &Renderer{
		backKeyword: DefaultBackKeyword,
		logger:      zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

type action int

const (
	actionAnswered action = iota
	actionBack
	actionRetry
)

// Run prompts until the user submits and returns the submitted record. The
// controller's sink receives the same record.
func (r *Renderer) Run(ctx context.Context, ctrl *form.Controller) (form.Record, error) {
	if ctx == nil {
		return form.Record{}, errors.New("tui: context is required")
	}
	if ctrl == nil {
		return form.Record{}, ErrNoController
	}

	if title := ctrl.Questions().Title(); title != "" {
		if err := r.driver.Info(ctx, r.theme.TitlePrefix+title); err != nil {
			return form.Record{}, err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return form.Record{}, err
		}

		view := render.ViewOf(ctrl)
		if err := r.driver.Info(ctx, r.theme.ProgressPrefix+view.Progress); err != nil {
			return form.Record{}, err
		}

		before := ctrl.Step()
		act, err := r.ask(ctx, ctrl, view)
		if err != nil {
			return form.Record{}, err
		}

		switch act {
		case actionRetry:
			continue
		case actionBack:
			r.logger.Debug().Int("step", before).Msg("back keyword")
			ctrl.GoPrevious()
			continue
		}
		if ctrl.Step() != before {
			continue
		}

		record, done, err := r.navigate(ctx, ctrl)
		if err != nil {
			return form.Record{}, err
		}
		if done {
			return record, nil
		}
	}
}

func (r *Renderer) ask(ctx context.Context, ctrl *form.Controller, view render.View) (action, error) {
	q := view.Question
	binding := render.BindCurrent(ctrl)

	switch q.Kind {
	case question.KindText, question.KindMonth:
		cfg := InputConfig{
			Message:     q.Prompt,
			Default:     view.Control.Text,
			Placeholder: view.Control.Placeholder,
			Help:        r.inputHelp(view),
		}
		if q.Kind == question.KindMonth {
			cfg.Validator = r.monthValidator(!view.Nav.PreviousDisabled)
		}
		answer, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return actionRetry, err
		}
		if r.isBack(view, answer) {
			return actionBack, nil
		}
		return actionAnswered, binding.Edit(answer)

	case question.KindSelect:
		labels := choiceLabels(view.Control.Choices)
		if !view.Nav.PreviousDisabled {
			labels = append(labels, labelBack)
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      q.Prompt,
			Options:      labels,
			DefaultIndex: selectedIndex(view.Control.Choices),
		})
		if err != nil {
			return actionRetry, err
		}
		switch {
		case idx == len(view.Control.Choices) && !view.Nav.PreviousDisabled:
			return actionBack, nil
		case idx < 0 || idx >= len(view.Control.Choices):
			return actionRetry, r.warn(ctx, "Invalid choice, try again.")
		}
		return actionAnswered, binding.Choose(view.Control.Choices[idx].Value)

	case question.KindMultiSelect:
		chosen, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  q.Prompt,
			Options:  choiceLabels(view.Control.Choices),
			Defaults: selectedIndices(view.Control.Choices),
			Help:     "Space toggles an option, enter confirms",
		})
		if err != nil {
			return actionRetry, err
		}
		want := make(map[int]bool, len(chosen))
		for _, idx := range chosen {
			want[idx] = true
		}
		for i, choice := range view.Control.Choices {
			if want[i] == choice.Selected {
				continue
			}
			if err := binding.Toggle(choice.Value, want[i]); err != nil {
				return actionRetry, err
			}
		}
		return actionAnswered, nil
	}

	return actionRetry, fmt.Errorf("tui: unsupported question kind %q", q.Kind)
}

// navigate shows the Next/Submit menu for a step that did not auto-advance.
func (r *Renderer) navigate(ctx context.Context, ctrl *form.Controller) (form.Record, bool, error) {
	nav := render.ViewOf(ctrl).Nav
	options := []string{nav.ForwardLabel}
	if !nav.PreviousDisabled {
		options = append(options, nav.PreviousLabel)
	}
	options = append(options, labelChange)

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: navMessage,
		Options: options,
	})
	if err != nil {
		return form.Record{}, false, err
	}
	if idx < 0 || idx >= len(options) {
		return form.Record{}, false, r.warn(ctx, "Invalid choice, try again.")
	}

	switch options[idx] {
	case render.LabelSubmit:
		r.logger.Debug().Msg("submit")
		return ctrl.Submit(), true, nil
	case render.LabelNext:
		ctrl.GoNext()
	case render.LabelPrevious:
		ctrl.GoPrevious()
	}
	return form.Record{}, false, nil
}

func (r *Renderer) inputHelp(view render.View) string {
	var parts []string
	if view.Question.Kind == question.KindMonth {
		parts = append(parts, monthHelpText)
	}
	if r.backKeyword != "" && !view.Nav.PreviousDisabled {
		parts = append(parts, fmt.Sprintf("Enter %q to go back", r.backKeyword))
	}
	return strings.Join(parts, ". ")
}

func (r *Renderer) isBack(view render.View, answer string) bool {
	return r.backKeyword != "" && !view.Nav.PreviousDisabled && strings.TrimSpace(answer) == r.backKeyword
}

// monthValidator accepts an empty answer or YYYY-MM as typed. The back
// keyword passes only where going back is possible.
func (r *Renderer) monthValidator(allowBack bool) func(string) error {
	return func(answer string) error {
		if answer == "" || monthPattern.MatchString(answer) {
			return nil
		}
		if allowBack && r.backKeyword != "" && strings.TrimSpace(answer) == r.backKeyword {
			return nil
		}
		return fmt.Errorf("expected YYYY-MM, got %q", answer)
	}
}

func (r *Renderer) warn(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func choiceLabels(choices []render.Choice) []string {
	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = choice.Label
	}
	return labels
}

func selectedIndex(choices []render.Choice) int {
	for i, choice := range choices {
		if choice.Selected {
			return i
		}
	}
	return 0
}

func selectedIndices(choices []render.Choice) []int {
	var out []int
	for i, choice := range choices {
		if choice.Selected {
			out = append(out, i)
		}
	}
	return out
}
