package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-questionnaire"
	"github.com/goliatone/go-questionnaire/pkg/form"
	"github.com/goliatone/go-questionnaire/pkg/render"
)

// Render returns the command that renders a single questionnaire step.
func Render(a *app) *cobra.Command {
	var step int
	var answersPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one questionnaire step as text or HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := questionnaire.LoadQuestions(a.cfg.Questions)
			if err != nil {
				return err
			}
			ctrl, err := form.New(set, form.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if answersPath != "" {
				payload, err := readInput(answersPath, cmd.InOrStdin())
				if err != nil {
					return err
				}
				if err := applyAnswers(ctrl, payload); err != nil {
					return err
				}
			}
			seek(ctrl, step)

			registry, err := questionnaire.DefaultRegistry()
			if err != nil {
				return err
			}
			out, err := registry.Render(cmd.Context(), a.cfg.Renderer, render.ViewOf(ctrl))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringP("questions", "q", "", "Question set file, JSON or YAML (default: built-in travel questionnaire)")
	cmd.Flags().StringP("renderer", "r", "text", "Renderer (text, html)")
	cmd.Flags().IntVarP(&step, "step", "s", 0, "Zero-based step to render")
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "JSON answers to prefill (- for stdin)")
	bindConfig(cmd.Flags(), "questions", "questions")
	bindConfig(cmd.Flags(), "renderer", "renderer")

	return cmd
}
