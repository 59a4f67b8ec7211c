// Package config loads gomount settings from an optional YAML file and
// GOMOUNT_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/heathj/gomount/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName = "gomount"
	configType = "yaml"
	envPrefix  = "GOMOUNT"

	keyLogLevel       = "log_level"
	keyLogFormat      = "log_format"
	keyTrimWhitespace = "trim_whitespace"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	TrimWhitespace bool   `mapstructure:"trim_whitespace"`
}

// Load reads path, or gomount.yaml from the working directory when path
// is empty. Only an explicitly named file has to exist. Environment
// variables such as GOMOUNT_LOG_LEVEL override the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyTrimWhitespace, true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log_format %q must be text or json", c.LogFormat)
	}
	return nil
}

// NewLogger builds a logger writing to stderr at the configured level and
// format.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := logrus.ParseLevel(c.LogLevel)
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}

// ParseOptions returns the dom parser options the config asks for.
func (c *Config) ParseOptions() []dom.ParseOption {
	var opts []dom.ParseOption
	if c.TrimWhitespace {
		opts = append(opts, dom.TrimWhitespace())
	}
	return opts
}
