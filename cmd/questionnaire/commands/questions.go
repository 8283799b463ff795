package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-questionnaire"
	"github.com/goliatone/go-questionnaire/pkg/schema"
)

// Questions returns the command that prints the question set or its answer
// schema.
func Questions(a *app) *cobra.Command {
	var format string
	var withSchema bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the question set or its answer schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := questionnaire.LoadQuestions(a.cfg.Questions)
			if err != nil {
				return err
			}

			var out []byte
			switch {
			case withSchema:
				out, err = schema.Marshal(schema.FromQuestions(set))
				out = append(out, '\n')
			case format == "json":
				out, err = json.MarshalIndent(set.Document(), "", "  ")
				out = append(out, '\n')
			case format == "yaml":
				out, err = yaml.Marshal(set.Document())
			default:
				return fmt.Errorf("unknown format %q: want yaml or json", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringP("questions", "q", "", "Question set file, JSON or YAML (default: built-in travel questionnaire)")
	bindConfig(cmd.Flags(), "questions", "questions")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, json)")
	cmd.Flags().BoolVar(&withSchema, "schema", false, "Print the OpenAPI schema of the answer record instead")

	return cmd
}
