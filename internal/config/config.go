package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/kettari/patterns-playground/internal/currency"
	"github.com/pkg/errors"
	"log/slog"
	"os"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Debug     bool   `env:"PLAYGROUND_DEBUG" env-default:"false" env-description:"enables debug logging"`
	LogFormat string `env:"PLAYGROUND_LOG_FORMAT" env-default:"text" env-description:"log format: text or json"`
	Country   string `env:"PLAYGROUND_COUNTRY" env-default:"USA" env-description:"country for currency:lookup without arguments"`
}

var config *Config

// GetConfig loads the configuration once and exits the process if it is invalid
func GetConfig() *Config {
	if config != nil {
		return config
	}

	conf, err := Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	config = conf

	return config
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Errorf("unsupported log format %q (PLAYGROUND_LOG_FORMAT)", c.LogFormat)
	}
	if _, err := currency.ParseCountry(c.Country); err != nil {
		return errors.Wrap(err, "PLAYGROUND_COUNTRY")
	}
	return nil
}

// Usage describes the environment variables
func Usage() string {
	usage, _ := cleanenv.GetDescription(&Config{}, nil)
	return usage
}
