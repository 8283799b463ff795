// Package question defines the static question descriptors that drive a
// questionnaire. A Set is validated once at construction (unique ids, option
// lists only on select kinds, placeholders only on text and month kinds) and
// is read-only afterwards; every accessor hands out copies. TravelSet returns
// the built-in travel planning set, and Parse/LoadFile read alternative sets
// from JSON or YAML documents.
package question
