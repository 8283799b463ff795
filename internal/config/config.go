package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. QUESTIONNAIRE_DRIVER.
const EnvPrefix = "QUESTIONNAIRE"

// Config holds CLI configuration.
type Config struct {
	// Questions is a JSON or YAML question set file; empty means the built-in
	// travel questionnaire.
	Questions   string       `mapstructure:"questions"`
	Driver      string       `mapstructure:"driver"`
	Renderer    string       `mapstructure:"renderer"`
	Output      OutputConfig `mapstructure:"output"`
	Log         LogConfig    `mapstructure:"log"`
	Suggest     bool         `mapstructure:"suggest"`
	BackKeyword string       `mapstructure:"back_keyword"`
}

// OutputConfig controls where submitted answers go.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	drivers    = []string{"survey", "huh"}
	renderers  = []string{"text", "html"}
	logFormats = []string{"console", "json"}
)

// Loader layers defaults, an optional YAML file, environment variables and
// bound command line flags, in increasing precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader with defaults and env overrides configured.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault("questions", "")
	v.SetDefault("driver", "survey")
	v.SetDefault("renderer", "text")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("suggest", false)
	v.SetDefault("back_keyword", "<")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Loader{v: v}
}

// BindFlag lets flag override key when the flag was set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("config: no flag for %q", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file and returns the merged configuration. An
// explicit path (or QUESTIONNAIRE_CONFIG) must exist; the default
// $HOME/.config/questionnaire/config.yaml is optional.
func (l *Loader) Load(path string) (Config, error) {
	l.v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", "questionnaire"))
		}
		l.v.SetConfigName("config")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ConfigFile reports the file the last Load read, if any.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	var errs []error
	if !oneOf(c.Driver, drivers) {
		errs = append(errs, fmt.Errorf("driver %q: want one of %s", c.Driver, strings.Join(drivers, ", ")))
	}
	if !oneOf(c.Renderer, renderers) {
		errs = append(errs, fmt.Errorf("renderer %q: want one of %s", c.Renderer, strings.Join(renderers, ", ")))
	}
	if !oneOf(c.Log.Format, logFormats) {
		errs = append(errs, fmt.Errorf("log.format %q: want one of %s", c.Log.Format, strings.Join(logFormats, ", ")))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
