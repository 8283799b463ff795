package form

import (
	"bytes"
	"encoding/json"

	"github.com/goliatone/go-questionnaire/pkg/question"
)

// Record maps question ids to answers. It keeps question order so encoded
// output reads in the same order the questions were asked.
type Record struct {
	order  []string
	values map[string]Value
}

// NewRecord seeds a record with the empty value of every question in set.
func NewRecord(set question.Set) Record {
	rec := Record{
		order:  set.IDs(),
		values: make(map[string]Value, set.Len()),
	}
	for _, q := range set.Questions() {
		rec.values[q.ID] = EmptyFor(q.Kind)
	}
	return rec
}

// Get returns the answer stored for id.
func (r Record) Get(id string) (Value, bool) {
	v, ok := r.values[id]
	if !ok {
		return Value{}, false
	}
	return v.copy(), true
}

// IDs returns the record keys in question order.
func (r Record) IDs() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of entries.
func (r Record) Len() int {
	return len(r.order)
}

// Text is shorthand for the string answer stored under id.
func (r Record) Text(id string) string {
	return r.values[id].AsText()
}

// Selected is shorthand for the set answer stored under id.
func (r Record) Selected(id string) []string {
	return r.values[id].Selected()
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	out := Record{
		order:  append([]string(nil), r.order...),
		values: make(map[string]Value, len(r.values)),
	}
	for id, v := range r.values {
		out.values[id] = v.copy()
	}
	return out
}

// Map returns a JSON-shaped map (strings and []any), suitable for schema
// validation and generic serializers.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for id, v := range r.values {
		out[id] = v.Interface()
	}
	return out
}

// Equal reports whether both records hold the same ids and answers.
func (r Record) Equal(other Record) bool {
	if len(r.values) != len(other.values) {
		return false
	}
	for id, v := range r.values {
		o, ok := other.values[id]
		if !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the record as an object in question order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MapStrings returns a copy with fn applied to every text answer and every
// selected option. Options that collapse to the same string are deduplicated.
func (r Record) MapStrings(fn func(id, s string) string) Record {
	out := r.Clone()
	for id, v := range out.values {
		if !v.multi {
			out.values[id] = Text(fn(id, v.text))
			continue
		}
		mapped := make([]string, len(v.set))
		for i, option := range v.set {
			mapped[i] = fn(id, option)
		}
		out.values[id] = Selection(mapped...)
	}
	return out
}

func (r Record) set(id string, v Value) {
	r.values[id] = v.copy()
}
