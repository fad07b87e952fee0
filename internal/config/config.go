/*
Package config loads the kvring command configuration from the environment.
*/
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "KVRING"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidLogFormat indicates an unsupported log format.
var ErrInvalidLogFormat = errors.New("invalid log format")

// Config is the kvring command configuration.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL"  default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	Strict    bool   `envconfig:"STRICT"     default:"false"`
}

// Load reads the configuration from KVRING_* environment variables.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

// Logger creates a logger writing to w.
func (c *Config) Logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch c.LogFormat {
	case FormatText:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format '%s': %w", c.LogFormat, ErrInvalidLogFormat)
	}

	return logger, nil
}
