package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-questionnaire"
	"github.com/goliatone/go-questionnaire/pkg/schema"
)

// Validate returns the command that checks a JSON answer payload.
func Validate(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <answers.json|->",
		Short: "Validate submitted answers against the question set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := questionnaire.LoadQuestions(a.cfg.Questions)
			if err != nil {
				return err
			}
			payload, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := schema.Validate(schema.FromQuestions(set), payload); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "answers valid")
			return err
		},
	}

	cmd.Flags().StringP("questions", "q", "", "Question set file, JSON or YAML (default: built-in travel questionnaire)")
	bindConfig(cmd.Flags(), "questions", "questions")

	return cmd
}
