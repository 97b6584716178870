package logger

import (
	"github.com/kettari/patterns-playground/internal/config"
	"io"
	"log/slog"
	"os"
)

// New builds a logger writing to w in the configured format and level
func New(conf *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if conf.Debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if conf.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup installs the configured logger as the slog default
func Setup(conf *config.Config) {
	setup(conf, os.Stderr)
}

func setup(conf *config.Config, w io.Writer) {
	slog.SetDefault(New(conf, w))

	slog.Debug("configuration parameters",
		"PLAYGROUND_DEBUG", conf.Debug,
		"PLAYGROUND_LOG_FORMAT", conf.LogFormat,
		"PLAYGROUND_COUNTRY", conf.Country)
}
