package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/question"
	"github.com/goliatone/go-questionnaire/pkg/testsupport"
)

// stubDriver replays scripted answers. Running out of script behaves like
// the user pressing Ctrl+C.
type stubDriver struct {
	inputs    []string
	selectIdx []int
	multiIdx  [][]int

	infoMessages []string
	inputConfigs []InputConfig
	selectConfig []SelectConfig

	inputPos  int
	selectPos int
	multiPos  int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", ErrAborted
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectConfig = append(s.selectConfig, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, ErrAborted
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, ErrAborted
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestRun_TravelWalkthrough(t *testing.T) {
	var submitted []form.Record
	ctrl := testsupport.NewController(t, question.TravelSet(), form.WithSink(form.SinkFunc(func(r form.Record) {
		submitted = append(submitted, r)
	})))

	driver := &stubDriver{
		inputs: []string{"Paris", "2025-06", "Vegetarian"},
		// duration, groupSize, budget, nav, accommodation, nav, transport, nav
		selectIdx: []int{1, 2, 3, 0, 3, 0, 5, 0},
		multiIdx:  [][]int{{1, 4}, {1, 5}},
	}

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := map[string]any{
		question.IDDestination:              "Paris",
		question.IDStartDate:                "2025-06",
		question.IDDuration:                 "Weekend",
		question.IDGroupSize:                "Couple",
		question.IDBudget:                   "Luxury ($3000+)",
		question.IDTripPurpose:              []any{"Adventure", "Food & Dining"},
		question.IDAccommodation:            "Mid-range Hotel",
		question.IDInterests:                []any{"Museums", "Beaches"},
		question.IDTransportationPreference: "Mix of Options",
		question.IDSpecialRequirements:      "Vegetarian",
	}
	if diff := cmp.Diff(want, got.Map()); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	if len(submitted) != 1 || !submitted[0].Equal(got) {
		t.Fatalf("sink should receive the returned record once, got %d", len(submitted))
	}
	if driver.infoMessages[0] != question.TravelTitle || driver.infoMessages[1] != "Question 1 of 10" {
		t.Fatalf("unexpected info lines %v", driver.infoMessages[:2])
	}

	last := driver.selectConfig[len(driver.selectConfig)-1]
	if diff := cmp.Diff([]string{"Submit", "Previous", labelChange}, last.Options); diff != "" {
		t.Fatalf("final menu mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_BackKeywordReturnsToPreviousQuestion(t *testing.T) {
	ctrl := testsupport.NewController(t, question.TravelSet())
	driver := &stubDriver{inputs: []string{"Rome", "<", "Milan"}}

	_, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if ctrl.Step() != 1 {
		t.Fatalf("expected to stop at step 1, got %d", ctrl.Step())
	}
	if got := ctrl.Record().Text(question.IDDestination); got != "Milan" {
		t.Fatalf("destination = %q, want Milan", got)
	}
	if got := ctrl.Record().Text(question.IDStartDate); got != "" {
		t.Fatalf("back keyword must not be stored, got %q", got)
	}

	if strings.Contains(driver.inputConfigs[0].Help, `"<"`) {
		t.Fatalf("first question must not offer the back keyword: %q", driver.inputConfigs[0].Help)
	}
	if !strings.Contains(driver.inputConfigs[1].Help, `"<"`) {
		t.Fatalf("second question should mention the back keyword: %q", driver.inputConfigs[1].Help)
	}
	if driver.inputConfigs[2].Default != "Rome" {
		t.Fatalf("revisited input should default to the stored answer, got %q", driver.inputConfigs[2].Default)
	}
}

func TestRun_SelectPreviousEntry(t *testing.T) {
	ctrl := testsupport.NewController(t, question.TravelSet())
	driver := &stubDriver{
		inputs:    []string{"Paris", "2025-06", "2025-07"},
		selectIdx: []int{6},
	}

	_, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if got := driver.selectConfig[0].Options; got[len(got)-1] != labelBack || got[0] != "Select an option" {
		t.Fatalf("unexpected duration options %v", got)
	}
	if ctrl.Step() != 2 {
		t.Fatalf("expected step 2, got %d", ctrl.Step())
	}
	if got := ctrl.Record().Text(question.IDStartDate); got != "2025-07" {
		t.Fatalf("startDate = %q", got)
	}
	if got := ctrl.Record().Text(question.IDDuration); got != "" {
		t.Fatalf("duration should stay unselected, got %q", got)
	}
}

func TestRun_ChangeAnswerTogglesMultiselect(t *testing.T) {
	set := question.MustSet("Pick",
		question.Descriptor{ID: "tags", Prompt: "Tags?", Kind: question.KindMultiSelect, Options: []string{"a", "b", "c"}},
	)
	ctrl := testsupport.NewController(t, set)
	driver := &stubDriver{
		multiIdx:  [][]int{{0, 2}, {1, 2}},
		selectIdx: []int{1, 0},
	}

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if tags, _ := got.Get("tags"); !tags.Equal(form.Selection("b", "c")) {
		t.Fatalf("unexpected selection %v", tags.Selected())
	}
	if diff := cmp.Diff([]string{"Submit", labelChange}, driver.selectConfig[0].Options); diff != "" {
		t.Fatalf("menu at step 0 must not offer Previous (-want +got):\n%s", diff)
	}
}

func TestRun_InvalidSelectionRetries(t *testing.T) {
	set := question.MustSet("One",
		question.Descriptor{ID: "size", Prompt: "Size?", Kind: question.KindSelect, Options: []string{"S", "M"}},
	)
	ctrl := testsupport.NewController(t, set)
	driver := &stubDriver{selectIdx: []int{-1, 2, 0}}

	got, err := New(WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "})).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.Text("size") != "M" {
		t.Fatalf("size = %q, want M", got.Text("size"))
	}

	var warned bool
	for _, msg := range driver.infoMessages {
		if msg == "! Invalid choice, try again." {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("expected an invalid choice warning, got %v", driver.infoMessages)
	}
}

func TestRun_Errors(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{}))
	if _, err := r.Run(context.Background(), nil); !errors.Is(err, ErrNoController) {
		t.Fatalf("expected ErrNoController, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctrl := testsupport.NewController(t, question.TravelSet())
	if _, err := r.Run(ctx, ctrl); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMonthValidator(t *testing.T) {
	r := New(WithPromptDriver(&stubDriver{}))
	validate := r.monthValidator(true)
	for _, ok := range []string{"", "2025-06", "2030-12", "<", " < "} {
		if err := validate(ok); err != nil {
			t.Fatalf("validate(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"2025-13", "June", "2025-6", "25-06", " 2030-12 "} {
		if err := validate(bad); err == nil {
			t.Fatalf("validate(%q) should fail", bad)
		}
	}

	if err := r.monthValidator(false)("<"); err == nil {
		t.Fatalf("back keyword must be rejected where previous is disabled")
	}
	noBack := New(WithPromptDriver(&stubDriver{}), WithBackKeyword(""))
	if err := noBack.monthValidator(true)("<"); err == nil {
		t.Fatalf("back keyword disabled, %q should fail", "<")
	}
}

// validatingDriver runs the input validator like a real terminal would,
// re-asking until an answer passes.
type validatingDriver struct {
	stubDriver
	rejected []string
}

func (d *validatingDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	for {
		answer, err := d.stubDriver.Input(ctx, cfg)
		if err != nil {
			return "", err
		}
		if cfg.Validator == nil || cfg.Validator(answer) == nil {
			return answer, nil
		}
		d.rejected = append(d.rejected, answer)
	}
}

func TestRun_MonthFirstQuestionRejectsBackKeyword(t *testing.T) {
	set := question.MustSet("When",
		question.Descriptor{ID: "when", Prompt: "When?", Kind: question.KindMonth},
	)
	ctrl := testsupport.NewController(t, set)
	driver := &validatingDriver{stubDriver: stubDriver{
		inputs:    []string{"<", "2025-06"},
		selectIdx: []int{0},
	}}

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.Text("when") != "2025-06" {
		t.Fatalf("when = %q, want 2025-06", got.Text("when"))
	}
	if diff := cmp.Diff([]string{"<"}, driver.rejected); diff != "" {
		t.Fatalf("rejected answers mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_TextAnswerStoredAsTyped(t *testing.T) {
	set := question.MustSet("Notes",
		question.Descriptor{ID: "notes", Prompt: "Notes?", Kind: question.KindText},
	)
	ctrl := testsupport.NewController(t, set)
	driver := &stubDriver{
		inputs:    []string{"  window seat  "},
		selectIdx: []int{0},
	}

	got, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.Text("notes") != "  window seat  " {
		t.Fatalf("notes = %q", got.Text("notes"))
	}
}
