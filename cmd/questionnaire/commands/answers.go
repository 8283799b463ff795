package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
)

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// applyAnswers stores a JSON answer payload in ctrl, in question order.
// Unknown ids are rejected; missing ids keep their current value.
func applyAnswers(ctrl *form.Controller, payload []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("decode answers: %w", err)
	}

	set := ctrl.Questions()
	for id := range raw {
		if _, _, ok := set.Lookup(id); !ok {
			return fmt.Errorf("%w: %q", form.ErrInvalidQuestionID, id)
		}
	}
	for _, q := range set.Questions() {
		value, ok := raw[q.ID]
		if !ok {
			continue
		}
		v, err := valueOf(q, value)
		if err != nil {
			return err
		}
		if err := ctrl.SetAnswer(q.ID, v); err != nil {
			return err
		}
	}
	return nil
}

func valueOf(q question.Descriptor, raw any) (form.Value, error) {
	switch v := raw.(type) {
	case string:
		if !q.Kind.IsMulti() {
			return form.Text(v), nil
		}
	case []any:
		if q.Kind.IsMulti() {
			options := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return form.Value{}, fmt.Errorf("%w: %q items must be strings", form.ErrTypeMismatch, q.ID)
				}
				options = append(options, s)
			}
			return form.Selection(options...), nil
		}
	}
	return form.Value{}, fmt.Errorf("%w: %q", form.ErrTypeMismatch, q.ID)
}

// seek moves ctrl to step, clamped to the question range.
func seek(ctrl *form.Controller, step int) {
	for ctrl.Step() > step && ctrl.Step() > 0 {
		ctrl.GoPrevious()
	}
	for ctrl.Step() < step && ctrl.Step() < ctrl.Total()-1 {
		ctrl.GoNext()
	}
}
