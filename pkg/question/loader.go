package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Title     string       `json:"title" yaml:"title"`
	Questions []Descriptor `json:"questions" yaml:"questions"`
}

// Parse decodes a JSON or YAML question document of the form
// {title, questions: [...]} and validates it through NewSet.
func Parse(data []byte, source string) (Set, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Set{}, fmt.Errorf("question: file %s is empty", source)
	}

	var doc documentFile
	if jsonErr := json.Unmarshal(data, &doc); jsonErr != nil {
		doc = documentFile{}
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return Set{}, fmt.Errorf("%w: %s: %w", ErrMalformedDocument, source, errors.Join(jsonErr, yamlErr))
		}
	}

	set, err := NewSet(doc.Title, doc.Questions...)
	if err != nil {
		return Set{}, fmt.Errorf("question: %s: %w", source, err)
	}
	return set, nil
}

// LoadFile reads a question document from disk.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("question: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a question document from fsys.
func LoadFS(fsys fs.FS, path string) (Set, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Set{}, fmt.Errorf("question: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Document returns the set in its on-disk shape, ready for JSON or YAML
// encoding.
func (s Set) Document() any {
	return documentFile{
		Title:     s.title,
		Questions: s.Questions(),
	}
}
