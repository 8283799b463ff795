package form

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-questionnaire/pkg/question"
)

// State is a read-only snapshot of a controller.
type State struct {
	Step     int
	Total    int
	Question question.Descriptor
	Value    Value
	Record   Record
}

// IsFirst reports whether the snapshot is at step 0.
func (s State) IsFirst() bool {
	return s.Step == 0
}

// IsLast reports whether the snapshot is at the final step.
func (s State) IsLast() bool {
	return s.Step == s.Total-1
}

// Controller owns the step index and the answer record of one form instance
// and mediates every mutation. It is not safe for concurrent use; the form is
// driven by one user event at a time.
type Controller struct {
	questions question.Set
	step      int
	record    Record

	sink      Sink
	observers []Observer
	logger    zerolog.Logger
	loggerSet bool
}

// New builds a controller at step 0 with every answer set to its empty value.
func New(questions question.Set, options ...Option) (*Controller, error) {
	if questions.Len() == 0 {
		return nil, ErrNoQuestions
	}

	c := &Controller{
		questions: questions,
		record:    NewRecord(questions),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if !c.loggerSet {
		c.logger = log.Logger
	}
	if c.sink == nil {
		c.sink = LogSink(c.logger)
	}
	return c, nil
}

// Questions returns the set driving the form.
func (c *Controller) Questions() question.Set {
	return c.questions
}

// Step returns the current step index.
func (c *Controller) Step() int {
	return c.step
}

// Total returns the number of questions.
func (c *Controller) Total() int {
	return c.questions.Len()
}

// Current returns the descriptor at the current step.
func (c *Controller) Current() question.Descriptor {
	q, _ := c.questions.At(c.step)
	return q
}

// Value returns the current answer for id.
func (c *Controller) Value(id string) (Value, bool) {
	return c.record.Get(id)
}

// Record returns a copy of the answer record.
func (c *Controller) Record() Record {
	return c.record.Clone()
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	q := c.Current()
	v, _ := c.record.Get(q.ID)
	return State{
		Step:     c.step,
		Total:    c.Total(),
		Question: q,
		Value:    v,
		Record:   c.record.Clone(),
	}
}

// SetAnswer replaces the stored answer for id. Answers to anything but a
// multiselect question advance the step by one, clamped to the last step;
// multiselect answers leave the step alone so several options can be toggled.
func (c *Controller) SetAnswer(id string, value Value) error {
	q, _, ok := c.questions.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidQuestionID, id)
	}
	if !value.matches(q.Kind) {
		return fmt.Errorf("%w: %q expects %s", ErrTypeMismatch, id, shapeOf(q.Kind))
	}

	c.record.set(id, value)
	if !q.Kind.IsMulti() {
		c.move(c.step + 1)
	}

	c.logger.Debug().
		Str("question", id).
		Int("step", c.step).
		Msg("answer set")
	c.notify()
	return nil
}

// GoNext moves one step forward. No-op on the last step.
func (c *Controller) GoNext() {
	c.move(c.step + 1)
	c.logger.Debug().Int("step", c.step).Msg("next")
	c.notify()
}

// GoPrevious moves one step back. No-op on the first step.
func (c *Controller) GoPrevious() {
	c.move(c.step - 1)
	c.logger.Debug().Int("step", c.step).Msg("previous")
	c.notify()
}

// Submit hands a copy of the full record to the sink and returns it. No
// validation is performed and it may be called at any step.
func (c *Controller) Submit() Record {
	record := c.record.Clone()
	c.logger.Debug().Int("step", c.step).Msg("submit")
	c.sink.Accept(record)
	return record
}

func (c *Controller) move(step int) {
	last := c.questions.Len() - 1
	switch {
	case step < 0:
		step = 0
	case step > last:
		step = last
	}
	c.step = step
}

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	state := c.State()
	for _, fn := range c.observers {
		fn(state)
	}
}

func shapeOf(kind question.Kind) string {
	if kind.IsMulti() {
		return "a set of strings"
	}
	return "a string"
}
