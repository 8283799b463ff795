package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-questionnaire"
	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/itinerary"
	"github.com/goliatone/go-questionnaire/pkg/renderers/tui"
	"github.com/goliatone/go-questionnaire/pkg/sink"
)

// newDriver builds the prompt driver named in the config. Tests replace it.
var newDriver = func(name string, out io.Writer) tui.PromptDriver {
	if name == "huh" {
		return tui.NewHuhDriver(out)
	}
	return tui.NewSurveyDriver(out)
}

// createOutput opens the answers file. Tests replace it.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Run returns the command that walks through the questionnaire interactively.
func Run(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer the questionnaire in the terminal",
		Long: `Walk through the questionnaire one question at a time.

Text and single-choice answers move to the next question automatically.
Multi-choice questions and the last question show a menu to continue,
go back or change the answer. Type the back keyword (default "<") in a
text answer to return to the previous question.

Submitted answers are written to stdout (or --out) in the chosen format.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	cmd.Flags().StringP("questions", "q", "", "Question set file, JSON or YAML (default: built-in travel questionnaire)")
	cmd.Flags().String("driver", "survey", "Prompt driver (survey, huh)")
	cmd.Flags().StringP("format", "f", "json", "Answer output format (json, form, pretty)")
	cmd.Flags().StringP("out", "o", "", "Write answers to this file instead of stdout")
	cmd.Flags().Bool("suggest", false, "Also print a trip-suggestion prompt built from the answers")
	cmd.Flags().String("back", "<", "Text answer that returns to the previous question (empty disables)")
	bindConfig(cmd.Flags(), "questions", "questions")
	bindConfig(cmd.Flags(), "driver", "driver")
	bindConfig(cmd.Flags(), "format", "output.format")
	bindConfig(cmd.Flags(), "out", "output.path")
	bindConfig(cmd.Flags(), "suggest", "suggest")
	bindConfig(cmd.Flags(), "back", "back_keyword")

	return cmd
}

func (a *app) run(cmd *cobra.Command) (err error) {
	set, err := questionnaire.LoadQuestions(a.cfg.Questions)
	if err != nil {
		return err
	}
	format, err := sink.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path := a.cfg.Output.Path; path != "" {
		f, openErr := createOutput(path)
		if openErr != nil {
			return fmt.Errorf("open output: %w", openErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}
		}()
		out = f
	}

	sinks := []form.Sink{
		form.LogSink(a.logger),
		sink.Sanitize(sink.Writer(out, format, sink.WithLogger(a.logger)), sink.WithLogger(a.logger)),
	}
	if a.cfg.Suggest {
		sinks = append(sinks, itinerary.NewPromptSink(cmd.OutOrStdout(), itinerary.WithLogger(a.logger)))
	}

	ctrl, err := form.New(set,
		form.WithSink(sink.Multi(sinks...)),
		form.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	runner := tui.New(
		tui.WithPromptDriver(newDriver(a.cfg.Driver, cmd.ErrOrStderr())),
		tui.WithBackKeyword(a.cfg.BackKeyword),
		tui.WithLogger(a.logger),
	)
	if _, err := runner.Run(cmd.Context(), ctrl); err != nil {
		return fmt.Errorf("questionnaire: %w", err)
	}
	return nil
}
