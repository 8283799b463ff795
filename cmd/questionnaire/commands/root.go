// Package commands defines the CLI command structure and flag bindings.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-questionnaire/internal/config"
	"github.com/goliatone/go-questionnaire/internal/logging"
)

// configKeyAnnotation marks flags that override a config key.
const configKeyAnnotation = "questionnaire/config-key"

// bindConfig marks flag name on flags as the override for config key.
func bindConfig(flags *pflag.FlagSet, name, key string) {
	_ = flags.SetAnnotation(name, configKeyAnnotation, []string{key})
}

// app carries the loaded configuration to subcommands.
type app struct {
	configPath string
	cfg        config.Config
	logger     zerolog.Logger
}

// Root returns the root command for the questionnaire CLI.
func Root() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "questionnaire",
		Short:         "Multi-step travel planning questionnaire",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (default: $HOME/.config/questionnaire/config.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	bindConfig(cmd.PersistentFlags(), "log-level", "log.level")
	bindConfig(cmd.PersistentFlags(), "log-format", "log.format")

	cmd.AddCommand(Run(a))
	cmd.AddCommand(Render(a))
	cmd.AddCommand(Questions(a))
	cmd.AddCommand(Validate(a))
	cmd.AddCommand(Schedule(a))

	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	loader := config.NewLoader()
	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		keys := flag.Annotations[configKeyAnnotation]
		if len(keys) == 0 || bindErr != nil {
			return
		}
		bindErr = loader.BindFlag(keys[0], flag)
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := loader.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	if file := loader.ConfigFile(); file != "" {
		logger.Debug().Str("file", file).Msg("config loaded")
	}
	return nil
}
