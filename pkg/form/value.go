package form

import (
	"encoding/json"

	"github.com/goliatone/go-questionnaire/pkg/question"
)

// Value is a single answer. It holds either a string (text, month and select
// questions) or a set of strings (multiselect questions). Sets keep the order
// in which options were added for display, but compare as sets.
type Value struct {
	multi bool
	text  string
	set   []string
}

// Text builds a string answer. The empty string means "unanswered".
func Text(s string) Value {
	return Value{text: s}
}

// Selection builds a set answer. Duplicate options collapse to one entry.
func Selection(options ...string) Value {
	v := Value{multi: true, set: []string{}}
	for _, option := range options {
		if !v.Contains(option) {
			v.set = append(v.set, option)
		}
	}
	return v
}

// EmptyFor returns the type-appropriate empty answer for kind.
func EmptyFor(kind question.Kind) Value {
	if kind.IsMulti() {
		return Selection()
	}
	return Text("")
}

// IsSelection reports whether the value is a set of strings.
func (v Value) IsSelection() bool {
	return v.multi
}

// AsText returns the string answer; set values yield "".
func (v Value) AsText() string {
	if v.multi {
		return ""
	}
	return v.text
}

// Selected returns a copy of the selected options; string values yield nil.
func (v Value) Selected() []string {
	if !v.multi {
		return nil
	}
	return append([]string{}, v.set...)
}

// Contains reports whether option is part of a set value.
func (v Value) Contains(option string) bool {
	for _, existing := range v.set {
		if existing == option {
			return true
		}
	}
	return false
}

// With returns the union of a set value and option.
func (v Value) With(option string) Value {
	if !v.multi || v.Contains(option) {
		return v.copy()
	}
	out := v.copy()
	out.set = append(out.set, option)
	return out
}

// Without returns the set value minus option. Removing an absent option
// leaves the set unchanged.
func (v Value) Without(option string) Value {
	if !v.multi {
		return v
	}
	out := Value{multi: true, set: make([]string, 0, len(v.set))}
	for _, existing := range v.set {
		if existing != option {
			out.set = append(out.set, existing)
		}
	}
	return out
}

// IsEmpty reports whether the value is "" or the empty set.
func (v Value) IsEmpty() bool {
	if v.multi {
		return len(v.set) == 0
	}
	return v.text == ""
}

// Equal compares shape and content; sets compare without regard to order.
func (v Value) Equal(other Value) bool {
	if v.multi != other.multi {
		return false
	}
	if !v.multi {
		return v.text == other.text
	}
	if len(v.set) != len(other.set) {
		return false
	}
	for _, option := range v.set {
		if !other.Contains(option) {
			return false
		}
	}
	return true
}

// Interface returns a JSON-shaped representation: string or []any.
func (v Value) Interface() any {
	if !v.multi {
		return v.text
	}
	out := make([]any, len(v.set))
	for i, option := range v.set {
		out[i] = option
	}
	return out
}

// MarshalJSON encodes strings as JSON strings and sets as arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.multi {
		return json.Marshal(v.Selected())
	}
	return json.Marshal(v.text)
}

func (v Value) matches(kind question.Kind) bool {
	return v.multi == kind.IsMulti()
}

func (v Value) copy() Value {
	if !v.multi {
		return v
	}
	return Value{multi: true, set: append([]string{}, v.set...)}
}
