// Package logging builds the slog loggers used by the pipeline and CLI.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Config selects the log level and output format.
type Config struct {
	Level slog.Level `help:"The default logging level." default:"info" env:"NETMST_LOG_LEVEL"`
	JSON  bool       `help:"Enable JSON logging." env:"NETMST_LOG_JSON"`
}

// New returns a logger writing to w: JSON when config.JSON is set, otherwise
// a colourised tint handler.
func New(w io.Writer, config Config) *slog.Logger {
	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: config.Level,
		})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      config.Level,
			TimeFormat: "15:04:05",
		})
	}
	return slog.New(handler)
}

// NewForTesting returns a plain text logger on stderr.
func NewForTesting() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
