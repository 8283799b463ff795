package question

// Kind identifies the input affordance of a question and, through it, the
// shape of the stored answer.
type Kind string

const (
	// KindText is a free-text input bound to a string answer.
	KindText Kind = "text"
	// KindMonth is a month picker bound to a "YYYY-MM" string answer.
	KindMonth Kind = "month"
	// KindSelect is a closed single-choice list bound to a string answer.
	KindSelect Kind = "select"
	// KindMultiSelect is a set of togglable options bound to a set answer.
	KindMultiSelect Kind = "multiselect"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindMonth, KindSelect, KindMultiSelect:
		return true
	default:
		return false
	}
}

// HasOptions reports whether questions of this kind carry an option list.
func (k Kind) HasOptions() bool {
	return k == KindSelect || k == KindMultiSelect
}

// IsMulti reports whether answers of this kind are sets of strings.
func (k Kind) IsMulti() bool {
	return k == KindMultiSelect
}

// Descriptor describes a single question. Descriptors are defined once per
// form and never mutated afterwards.
type Descriptor struct {
	ID          string   `json:"id" yaml:"id"`
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Kind        Kind     `json:"kind" yaml:"kind"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
}

func (d Descriptor) clone() Descriptor {
	out := d
	if d.Options != nil {
		out.Options = append([]string(nil), d.Options...)
	}
	return out
}
