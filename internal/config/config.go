// Package config loads fhirconv settings from defaults, an optional config
// file, FHIRCONV_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	fc "github.com/gofhir/converter"
	"github.com/gofhir/converter/pkg/logger"
)

// EnvPrefix prefixes every environment variable, e.g. FHIRCONV_LOG_LEVEL.
const EnvPrefix = "FHIRCONV"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputDump = "dump"
)

// Config holds the CLI settings. Keys match the flag names.
type Config struct {
	From   string `mapstructure:"from"`
	To     string `mapstructure:"to"`
	Output string `mapstructure:"output"`
	Quiet  bool   `mapstructure:"quiet"`

	StrictParse bool          `mapstructure:"strict-parse"`
	Where       string        `mapstructure:"where"`
	Workers     int           `mapstructure:"workers"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxFailures int           `mapstructure:"max-failures"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`

	Definitions string `mapstructure:"definitions"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("from", string(fc.R4))
	v.SetDefault("to", string(fc.R5))
	v.SetDefault("output", OutputText)
	v.SetDefault("quiet", false)
	v.SetDefault("strict-parse", false)
	v.SetDefault("where", "")
	v.SetDefault("workers", 0)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("max-failures", 0)
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "console")
	v.SetDefault("definitions", "")
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and flags into a Config. An empty file looks
// for fhirconv.yaml in the working directory and ignores its absence.
// flags may be nil.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (*Config, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("fhirconv")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks versions, output format and log settings.
func (c *Config) Validate() error {
	if _, err := fc.ParseVersion(c.From); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if _, err := fc.ParseVersion(c.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML, OutputDump:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.MaxFailures < 0 {
		return fmt.Errorf("max-failures must not be negative")
	}
	return nil
}

// Versions returns the parsed source and target releases.
func (c *Config) Versions() (from, to fc.FHIRVersion, err error) {
	if from, err = fc.ParseVersion(c.From); err != nil {
		return "", "", err
	}
	if to, err = fc.ParseVersion(c.To); err != nil {
		return "", "", err
	}
	return from, to, nil
}

// Options translates the settings into converter options.
func (c *Config) Options() []fc.Option {
	opts := []fc.Option{
		fc.WithStrictParse(c.StrictParse),
		fc.WithFilter(c.Where),
		fc.WithWorkerCount(c.Workers),
		fc.WithJobTimeout(c.Timeout),
		fc.WithMaxFailures(c.MaxFailures),
		fc.WithLogLevel(c.LogLevel),
	}
	return opts
}

// Logger builds the logger the settings describe, writing to w.
func (c *Config) Logger(w io.Writer) *logger.Logger {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		level = logger.LevelWarn
	}
	if c.LogFormat == "json" {
		return logger.NewJSON(w, level)
	}
	return logger.New(w, level)
}
