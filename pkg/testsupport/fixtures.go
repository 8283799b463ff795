package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
)

// NewController builds a controller over set with logging disabled. Extra
// options are applied after the silent logger, so tests can still override it.
func NewController(t testing.TB, set question.Set, opts ...form.Option) *form.Controller {
	t.Helper()

	ctrl, err := form.New(set, append([]form.Option{form.WithLogger(zerolog.Nop())}, opts...)...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return ctrl
}

// ControllerAt returns a travel questionnaire controller positioned on the
// question with the given id.
func ControllerAt(t testing.TB, id string, opts ...form.Option) *form.Controller {
	t.Helper()

	set := question.TravelSet()
	_, step, ok := set.Lookup(id)
	if !ok {
		t.Fatalf("unknown travel question %q", id)
	}
	ctrl := NewController(t, set, opts...)
	for ctrl.Step() < step {
		ctrl.GoNext()
	}
	return ctrl
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t testing.TB, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t testing.TB, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
