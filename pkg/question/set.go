package question

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySet is returned when a set is built without questions.
	ErrEmptySet = errors.New("question: set has no questions")
	// ErrInvalidDescriptor wraps every per-question construction failure.
	ErrInvalidDescriptor = errors.New("question: invalid descriptor")
	// ErrMalformedDocument is returned when a document is neither valid JSON
	// nor valid YAML.
	ErrMalformedDocument = errors.New("question: invalid JSON or YAML")
)

// Set is the fixed, ordered list of questions driving a form. The zero value
// is an empty set; use NewSet to build a usable one.
type Set struct {
	title     string
	questions []Descriptor
	index     map[string]int
}

// NewSet validates the descriptors and returns an immutable set. Options are
// copied so later changes to the caller's slices do not leak in.
func NewSet(title string, questions ...Descriptor) (Set, error) {
	if len(questions) == 0 {
		return Set{}, ErrEmptySet
	}

	set := Set{
		title:     strings.TrimSpace(title),
		questions: make([]Descriptor, 0, len(questions)),
		index:     make(map[string]int, len(questions)),
	}
	for pos, q := range questions {
		if err := validateDescriptor(q); err != nil {
			return Set{}, fmt.Errorf("%w: question %d: %v", ErrInvalidDescriptor, pos, err)
		}
		if _, exists := set.index[q.ID]; exists {
			return Set{}, fmt.Errorf("%w: duplicate id %q", ErrInvalidDescriptor, q.ID)
		}
		set.index[q.ID] = len(set.questions)
		set.questions = append(set.questions, q.clone())
	}
	return set, nil
}

// MustSet panics when NewSet fails. Useful for package-level definitions.
func MustSet(title string, questions ...Descriptor) Set {
	set, err := NewSet(title, questions...)
	if err != nil {
		panic(err)
	}
	return set
}

// Title returns the display title of the questionnaire.
func (s Set) Title() string {
	return s.title
}

// Len returns the number of questions.
func (s Set) Len() int {
	return len(s.questions)
}

// At returns the question at position i.
func (s Set) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(s.questions) {
		return Descriptor{}, false
	}
	return s.questions[i].clone(), true
}

// Lookup resolves a question by id, returning its position as well.
func (s Set) Lookup(id string) (Descriptor, int, bool) {
	pos, ok := s.index[id]
	if !ok {
		return Descriptor{}, -1, false
	}
	return s.questions[pos].clone(), pos, true
}

// Questions returns a copy of every descriptor in order.
func (s Set) Questions() []Descriptor {
	out := make([]Descriptor, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.clone()
	}
	return out
}

// IDs returns the question ids in order.
func (s Set) IDs() []string {
	out := make([]string, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.ID
	}
	return out
}

func validateDescriptor(q Descriptor) error {
	if strings.TrimSpace(q.ID) == "" {
		return errors.New("id is required")
	}
	if q.ID != strings.TrimSpace(q.ID) {
		return fmt.Errorf("id %q has surrounding whitespace", q.ID)
	}
	if !q.Kind.Valid() {
		return fmt.Errorf("%s: unknown kind %q", q.ID, q.Kind)
	}

	if !q.Kind.HasOptions() {
		if len(q.Options) > 0 {
			return fmt.Errorf("%s: options are only allowed on select questions", q.ID)
		}
		return nil
	}

	if q.Placeholder != "" {
		return fmt.Errorf("%s: placeholder is only allowed on text and month questions", q.ID)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("%s: %s question requires options", q.ID, q.Kind)
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, option := range q.Options {
		// "" is the unselected sentinel and must stay distinct from every option.
		if option == "" {
			return fmt.Errorf("%s: empty option", q.ID)
		}
		if _, dup := seen[option]; dup {
			return fmt.Errorf("%s: duplicate option %q", q.ID, option)
		}
		seen[option] = struct{}{}
	}
	return nil
}
